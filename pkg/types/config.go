package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	Version         string `envconfig:"VERSION" default:"dev"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	MongoURI      string `envconfig:"MONGODB_URI"`
	MongoDatabase string `envconfig:"MONGODB_DATABASE" default:"campushelp"`

	SentryDSN string `envconfig:"SENTRY_DSN"`

	// Origin allowed to call the API from a browser context. The mobile
	// client does not care, but the Expo dev server does.
	AllowedOrigin string `envconfig:"ALLOWED_ORIGIN" default:"*"`

	// Attachment storage. "disk" serves files back at /uploads, "s3"
	// delegates to the configured bucket.
	StorageBackend  string `envconfig:"STORAGE_BACKEND" default:"disk"`
	UploadDir       string `envconfig:"UPLOAD_DIR" default:"uploads"`
	S3BucketName    string `envconfig:"S3_BUCKET"`
	S3PublicBaseURL string `envconfig:"S3_PUBLIC_BASE_URL"`
}
