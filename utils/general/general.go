package generalutils

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/ryancormack/aws-console-share-extension/internal/consoleurl"
	"github.com/ryancormack/aws-console-share-extension/models"
)

type GeneralUtilsInterface interface {
	IsRegionValid(region string) bool
	PrintSessionDetails(info models.SessionInfo, resolvedRole string)
}

type DefaultGeneralUtilsManager struct{}

func NewGeneralUtilsManager() GeneralUtilsInterface {
	return &DefaultGeneralUtilsManager{}
}

// PrintSessionDetails summarizes the session a deep link was built from.
func (d *DefaultGeneralUtilsManager) PrintSessionDetails(info models.SessionInfo, resolvedRole string) {
	fmt.Printf(`
Deep Link Session:
---------------------------------
Account Id    : %s
Role Name     : %s
Region        : %s
Multi Account : %t
Destination   : %s
---------------------------------
`, info.AccountID, resolvedRole, info.Region, info.IsMultiAccount, info.CurrentURL)
}

var (
	validRegionsCache map[string]bool
	regionsCacheMutex sync.RWMutex
)

// IsRegionValid checks the region against the live DescribeRegions list
// when credentials are available, falling back to a format check offline.
// Results are cached for the life of the process.
func (d *DefaultGeneralUtilsManager) IsRegionValid(region string) bool {
	regionsCacheMutex.RLock()
	if validRegionsCache != nil {
		if cached, exists := validRegionsCache[region]; exists {
			regionsCacheMutex.RUnlock()
			return cached
		}
	}
	regionsCacheMutex.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.LoadDefaultConfig(ctx)
	if err == nil {
		ec2Client := ec2.NewFromConfig(cfg)
		output, err := ec2Client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{
			AllRegions: aws.Bool(true),
		})
		if err == nil {
			regionsCacheMutex.Lock()
			if validRegionsCache == nil {
				validRegionsCache = make(map[string]bool)
			}
			for _, r := range output.Regions {
				if r.RegionName != nil && *r.RegionName == region {
					validRegionsCache[region] = true
					regionsCacheMutex.Unlock()
					return true
				}
			}
			validRegionsCache[region] = false
			regionsCacheMutex.Unlock()
			return false
		}
	}

	return consoleurl.IsValidRegionFormat(region)
}
