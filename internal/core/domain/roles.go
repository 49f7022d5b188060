package domain

// Role names as they appear in token claims and authorization policies.
// The labels are the hospital's own (mostly Thai) and must match the values
// already present in issued tokens and the frontend.
const (
	RoleAdministrator       = "Administrator"
	RoleAppointment         = "ระบบนัดหมาย"
	RoleFinance             = "การเงิน"
	RoleMedicalRecord       = "เวชระเบียน"
	RoleTeacher             = "อาจารย์"
	RoleBachelor            = "ปริญญาตรี"
	RoleDrug                = "ระบบยา"
	RoleGeneral             = "ผู้ใช้งานทั่วไป"
	RoleMaster              = "ปริญญาโท"
	RoleRequirementDiag     = "RequirementDiag"
	RoleHeadDentalAssistant = "หัวหน้าผู้ช่วยทันตแพทย์"
	RoleDentalAssistant     = "ผู้ช่วยทันตแพทย์"
)

var roleNames = map[int]string{
	1:  RoleAdministrator,
	2:  RoleAppointment,
	3:  RoleFinance,
	4:  RoleMedicalRecord,
	5:  RoleTeacher,
	6:  RoleBachelor,
	7:  RoleDrug,
	8:  RoleGeneral,
	9:  RoleMaster,
	10: RoleRequirementDiag,
	11: RoleHeadDentalAssistant,
	12: RoleDentalAssistant,
}

// RoleName resolves a role id to its display name. Total over all ints:
// anything outside 1..12 resolves to the general user role.
func RoleName(roleID int) string {
	if name, ok := roleNames[roleID]; ok {
		return name
	}
	return RoleGeneral
}
