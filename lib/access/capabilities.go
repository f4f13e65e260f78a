package access

import (
	"erp-tools-backend/models"
)

// RecomputeGrantedCapabilities полный набор CRUD-прав для уровня доступа.
// Набор строится заново с нуля, кумулятивно по уровням, поэтому
// при понижении уровня права предыдущего уровня не протекают.
func RecomputeGrantedCapabilities(level models.AccessLevel) []models.Capability {
	capabilities := make([]models.Capability, 0, 4)
	if level.AtLeast(models.AccessRead) {
		capabilities = append(capabilities, models.CapabilityView)
	}
	if level.AtLeast(models.AccessCreate) {
		capabilities = append(capabilities, models.CapabilityAdd)
	}
	if level.AtLeast(models.AccessUpdate) {
		capabilities = append(capabilities, models.CapabilityChange)
	}
	if level.AtLeast(models.AccessDelete) {
		capabilities = append(capabilities, models.CapabilityDelete)
	}
	return capabilities
}

// CapabilityStrings строковое представление для хранения в text[]
func CapabilityStrings(capabilities []models.Capability) []string {
	result := make([]string, 0, len(capabilities))
	for _, capability := range capabilities {
		result = append(result, string(capability))
	}
	return result
}
