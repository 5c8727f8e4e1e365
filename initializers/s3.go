package initializers

import (
	"context"

	s3client "hrms-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) s3client.Provider {
	client, err := s3client.NewClient()
	if err != nil {
		panic(err.Error())
	}
	if err = client.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("can not ensure the document bucket")
	}
	return client
}
