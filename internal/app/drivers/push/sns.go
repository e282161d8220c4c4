package push

import (
	"context"
	appconfig "lablink-service/internal/app/config"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/sirupsen/logrus"
)

func NewSNSClient(driverConfig *appconfig.DriverConfig, log *logrus.Logger) *sns.Client {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(driverConfig.SNS.Region))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %s", err.Error())
	}
	log.Println("Successfully initialized SNS client")
	return sns.NewFromConfig(awsCfg)
}
