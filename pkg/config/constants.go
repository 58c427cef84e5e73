package config

// EnvPrefix is passed to envconfig; individual fields carry explicit
// STOREFRONT_* tags so the prefix only matters for unannotated fields.
const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "STOREFRONT_APP_ENV"
	EnvPort     = "STOREFRONT_APP_PORT"
	EnvDBDriver = "STOREFRONT_DB_DRIVER"
	EnvDBPath   = "STOREFRONT_DB_PATH"
	EnvDBDSN    = "STOREFRONT_DB_DSN"
	EnvRedisURL = "STOREFRONT_REDIS_URL"
)

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)
