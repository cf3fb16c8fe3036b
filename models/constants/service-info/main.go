package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Concord Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the Concord genotype-concordance API!"
	SERVICE_DESCRIPTION ServiceInfo = "Genotype concordance benchmarking service implementing the GA4GH evaluation scheme."

	SERVICE_ARTIFACT    ServiceInfo = "concord"
	SERVICE_VERSION     ServiceInfo = "0.0.1"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("org.ga4gh.bench:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
