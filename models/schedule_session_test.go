package models

import "testing"

func TestSessionCanTransition(t *testing.T) {
	tests := []struct {
		from SessionStatus
		to   SessionStatus
		want bool
	}{
		{SessionScheduled, SessionCompleted, true},
		{SessionScheduled, SessionCancelled, true},
		{SessionScheduled, SessionScheduled, false},
		{SessionCompleted, SessionCancelled, false},
		{SessionCompleted, SessionScheduled, false},
		{SessionCancelled, SessionCompleted, false},
		{SessionCancelled, SessionScheduled, false},
	}
	for _, tt := range tests {
		s := ScheduleSession{Status: tt.from}
		if got := s.CanTransition(tt.to); got != tt.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidSessionType(t *testing.T) {
	for _, valid := range []string{"personal", "group", "online"} {
		if !ValidSessionType(valid) {
			t.Errorf("ValidSessionType(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "Personal", "virtual", "grp"} {
		if ValidSessionType(invalid) {
			t.Errorf("ValidSessionType(%q) = true, want false", invalid)
		}
	}
}

func TestValidRoleFailsClosed(t *testing.T) {
	for _, valid := range []string{"member", "trainer", "nutritionist", "admin"} {
		if !ValidRole(valid) {
			t.Errorf("ValidRole(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "Member", "superadmin", "coach"} {
		if ValidRole(invalid) {
			t.Errorf("ValidRole(%q) = true, want false", invalid)
		}
	}
}
