package models

// Operation - защищаемая операция сервиса
type Operation string

const (
	OpIncidentReport       Operation = "incident.report"
	OpIncidentUpdateStatus Operation = "incident.update_status"
	OpIncidentAssign       Operation = "incident.assign"
	OpUserManage           Operation = "user.manage"
	OpProjectManage        Operation = "project.manage"
	OpTrainingManage       Operation = "training.manage"
)

// rolePermissions - единая таблица роль -> разрешённые операции.
// Смена статуса и назначение ответственного доступны начиная с бригадира.
var rolePermissions = map[Role]map[Operation]bool{
	RoleWorker: {
		OpIncidentReport: true,
	},
	RoleTeamLeader: {
		OpIncidentReport:       true,
		OpIncidentUpdateStatus: true,
		OpIncidentAssign:       true,
	},
	RoleSSMResponsible: {
		OpIncidentReport:       true,
		OpIncidentUpdateStatus: true,
		OpIncidentAssign:       true,
		OpProjectManage:        true,
		OpTrainingManage:       true,
	},
	RoleAdmin: {
		OpIncidentReport:       true,
		OpIncidentUpdateStatus: true,
		OpIncidentAssign:       true,
		OpUserManage:           true,
		OpProjectManage:        true,
		OpTrainingManage:       true,
	},
}

// Can сообщает, разрешена ли роли данная операция
func (r Role) Can(op Operation) bool {
	return rolePermissions[r][op]
}
