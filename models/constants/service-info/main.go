package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "Population Differentiation Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the popdiff FST API!"
	SERVICE_DESCRIPTION ServiceInfo = "Pairwise FST matrices and heatmaps for populations by gene."
	SERVICE_CONTACT     ServiceInfo = "mailto:popdiff-maintainers@example.org"

	SERVICE_ARTIFACT    ServiceInfo = "popdiff"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("org.archgenome:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
