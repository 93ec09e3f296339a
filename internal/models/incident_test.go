package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncidentStatus_Valid(t *testing.T) {
	for _, status := range []IncidentStatus{StatusReported, StatusInvestigating, StatusResolved, StatusClosed} {
		assert.True(t, status.Valid(), "статус %s должен быть допустимым", status)
	}
	assert.False(t, IncidentStatus("archived").Valid())
	assert.False(t, IncidentStatus("").Valid())
}

func TestIncidentType_Labels(t *testing.T) {
	assert.Equal(t, "Near miss", IncidentNearMiss.Label())
	assert.Equal(t, "Property damage", IncidentPropertyDamage.Label())
	// Неизвестный тип возвращается как есть, не как пустая строка
	assert.Equal(t, "mystery", IncidentType("mystery").Label())
}

func TestNextStatus_LinearLifecycle(t *testing.T) {
	cases := []struct {
		current IncidentStatus
		next    IncidentStatus
		ok      bool
	}{
		{StatusReported, StatusInvestigating, true},
		{StatusInvestigating, StatusResolved, true},
		{StatusResolved, StatusClosed, true},
		{StatusClosed, "", false},
		{IncidentStatus("bogus"), "", false},
	}

	for _, tc := range cases {
		next, ok := NextStatus(tc.current)
		assert.Equal(t, tc.ok, ok, "current=%s", tc.current)
		assert.Equal(t, tc.next, next, "current=%s", tc.current)
	}
}

func TestCanTransition(t *testing.T) {
	// Единственный следующий шаг разрешен
	assert.True(t, CanTransition(StatusReported, StatusInvestigating))
	assert.True(t, CanTransition(StatusInvestigating, StatusResolved))
	assert.True(t, CanTransition(StatusResolved, StatusClosed))

	// Повторное применение текущего статуса - no-op, но допустимо
	for _, status := range []IncidentStatus{StatusReported, StatusInvestigating, StatusResolved, StatusClosed} {
		assert.True(t, CanTransition(status, status), "повтор %s", status)
	}

	// Перепрыгивание шагов запрещено
	assert.False(t, CanTransition(StatusReported, StatusResolved))
	assert.False(t, CanTransition(StatusReported, StatusClosed))
	assert.False(t, CanTransition(StatusInvestigating, StatusClosed))

	// Движение назад запрещено
	assert.False(t, CanTransition(StatusInvestigating, StatusReported))
	assert.False(t, CanTransition(StatusClosed, StatusResolved))

	// Цель вне перечисления запрещена всегда
	assert.False(t, CanTransition(StatusReported, IncidentStatus("archived")))
	assert.False(t, CanTransition(StatusClosed, IncidentStatus("")))
}

func filterFixture() []*Incident {
	return []*Incident{
		{Type: IncidentNearMiss, Description: "Scaffolding plank almost fell"},
		{Type: IncidentEnvironmental, Description: "Diesel spill near the gate"},
		{Type: IncidentEnvironmental, Description: "Dust above threshold"},
		{Type: IncidentOther, Description: "Broken ladder in storage"},
		{Type: IncidentNearMiss, Description: "Crane load swung over walkway"},
	}
}

func TestFilterIncidents_EmptyFilterReturnsAllInOrder(t *testing.T) {
	incidents := filterFixture()

	result := FilterIncidents(incidents, "", "")

	require.Len(t, result, len(incidents))
	for i := range incidents {
		assert.Same(t, incidents[i], result[i])
	}
}

func TestFilterIncidents_QueryMatchesDescriptionCaseInsensitive(t *testing.T) {
	incidents := filterFixture()

	result := FilterIncidents(incidents, "DIESEL", "")

	require.Len(t, result, 1)
	assert.Equal(t, "Diesel spill near the gate", result[0].Description)
}

func TestFilterIncidents_QueryMatchesTypeLabel(t *testing.T) {
	incidents := filterFixture()

	// "near miss" встречается в отображаемом названии типа, не в описаниях
	result := FilterIncidents(incidents, "near miss", "")

	require.Len(t, result, 2)
	assert.Equal(t, IncidentNearMiss, result[0].Type)
	assert.Equal(t, IncidentNearMiss, result[1].Type)
}

func TestFilterIncidents_TypeFilterAndQueryCombineWithAND(t *testing.T) {
	incidents := filterFixture()

	result := FilterIncidents(incidents, "spill", IncidentEnvironmental)

	require.Len(t, result, 1)
	assert.Equal(t, "Diesel spill near the gate", result[0].Description)

	// Запрос совпадает, но тип - нет
	result = FilterIncidents(incidents, "spill", IncidentNearMiss)
	assert.Empty(t, result)
}

func TestFilterIncidents_TypeFilterOnly(t *testing.T) {
	incidents := filterFixture()

	result := FilterIncidents(incidents, "", IncidentEnvironmental)

	require.Len(t, result, 2)
	assert.Equal(t, "Diesel spill near the gate", result[0].Description)
	assert.Equal(t, "Dust above threshold", result[1].Description)
}

func TestFilterIncidents_NoMatches(t *testing.T) {
	incidents := filterFixture()

	result := FilterIncidents(incidents, "asbestos", "")

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFilterIncidents_DoesNotMutateInput(t *testing.T) {
	incidents := filterFixture()
	first, last := incidents[0], incidents[len(incidents)-1]

	_ = FilterIncidents(incidents, "dust", IncidentEnvironmental)

	require.Len(t, incidents, 5)
	assert.Same(t, first, incidents[0])
	assert.Same(t, last, incidents[len(incidents)-1])
}

func TestRolePermissions(t *testing.T) {
	// Любая роль может сообщить об инциденте
	for _, role := range []Role{RoleWorker, RoleTeamLeader, RoleSSMResponsible, RoleAdmin} {
		assert.True(t, role.Can(OpIncidentReport), "роль %s", role)
	}

	// Смена статуса и назначение - только для ответственных ролей
	assert.False(t, RoleWorker.Can(OpIncidentUpdateStatus))
	assert.True(t, RoleSSMResponsible.Can(OpIncidentUpdateStatus))
	assert.True(t, RoleAdmin.Can(OpIncidentUpdateStatus))
	assert.False(t, RoleWorker.Can(OpIncidentAssign))

	// Управление пользователями - только администратор
	assert.True(t, RoleAdmin.Can(OpUserManage))
	assert.False(t, RoleSSMResponsible.Can(OpUserManage))
	assert.False(t, RoleTeamLeader.Can(OpUserManage))

	// Неизвестная роль не может ничего
	assert.False(t, Role("contractor").Can(OpIncidentReport))
}
