package config

import "main/utils"

// StorageConfig describes the S3-compatible bucket that holds note images.
// Endpoint is optional; when set (MinIO and friends) path-style addressing
// is used and public URLs are composed from it.
type StorageConfig struct {
	Region    string
	Bucket    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

func LoadStorageConfig() StorageConfig {
	return StorageConfig{
		Region:    utils.GetEnvAsString("S3_REGION", "us-east-1"),
		Bucket:    utils.GetEnvAsString("S3_BUCKET", ""),
		Endpoint:  utils.GetEnvAsString("S3_ENDPOINT", ""),
		AccessKey: utils.GetEnvAsString("S3_ACCESS_KEY", ""),
		SecretKey: utils.GetEnvAsString("S3_SECRET_KEY", ""),
	}
}

func (c StorageConfig) Configured() bool {
	return c.Bucket != "" && c.AccessKey != "" && c.SecretKey != ""
}
