package models

type Config struct {
	Debug          bool   `envconfig:"CONCORD_DEBUG"`
	SemVer         string `envconfig:"CONCORD_SEMVER"`
	ServiceContact string `envconfig:"CONCORD_SERVICE_CONTACT"`
	Api            struct {
		Url  string `envconfig:"CONCORD_PUBLIC_URL"`
		Port string `envconfig:"CONCORD_API_INTERNAL_PORT"`
	}
	Concordance struct {
		MissingAsNoCall                bool `envconfig:"CONCORD_SCHEME_MISSING_AS_NO_CALL"`
		BulkIndexingCap                int  `envconfig:"CONCORD_BULK_INDEXING_CAP"`
		SiteProcessingConcurrencyLevel int  `envconfig:"CONCORD_SITE_PROCESSING_CONCURRENCY_LEVEL"`
		RequestRetentionDays           int  `envconfig:"CONCORD_REQUEST_RETENTION_DAYS"`
	}
	Elasticsearch struct {
		Url      string `envconfig:"CONCORD_ES_URL"`
		Username string `envconfig:"CONCORD_ES_USERNAME"`
		Password string `envconfig:"CONCORD_ES_PASSWORD"`
	}
}
