package model

import (
	"testing"

	"chronos.team/chronos/internal/constants"
)

func TestTaskHours(t *testing.T) {
	cases := []struct {
		name        string
		timeType    constants.TimeType
		timeValue   float64
		hoursPerDay float64
		want        float64
	}{
		{"misc minutes to hours", constants.TimeMisc, 30, 8, 0.5},
		{"misc full hour", constants.TimeMisc, 60, 8, 1},
		{"daily passes through", constants.TimeDaily, 2, 8, 2},
		{"long uses hours per day", constants.TimeLong, 3, 8, 24},
		{"long custom factor", constants.TimeLong, 2, 6, 12},
		{"zero value", constants.TimeDaily, 0, 8, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := Task{TimeType: tc.timeType, TimeValue: tc.timeValue}
			got := task.Hours(tc.hoursPerDay)
			if got != tc.want {
				t.Errorf("Hours() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTaskHoursScalesLinearly(t *testing.T) {
	for _, timeType := range []constants.TimeType{constants.TimeMisc, constants.TimeDaily, constants.TimeLong} {
		base := Task{TimeType: timeType, TimeValue: 10}
		double := Task{TimeType: timeType, TimeValue: 20}

		if double.Hours(8) != 2*base.Hours(8) {
			t.Errorf("%s: doubling time_value did not double hours", timeType)
		}
		if base.Hours(8) < 0 {
			t.Errorf("%s: hours must be non-negative", timeType)
		}
	}
}

func TestAnnouncementTargeting(t *testing.T) {
	broadcast := Announcement{}
	if !broadcast.TargetsDepartment("warehouse") {
		t.Error("broadcast should target every department")
	}

	targeted := Announcement{Departments: "warehouse, hr"}
	if !targeted.TargetsDepartment("warehouse") {
		t.Error("expected warehouse to be targeted")
	}
	if !targeted.TargetsDepartment("hr") {
		t.Error("expected hr to be targeted")
	}
	if targeted.TargetsDepartment("marketing") {
		t.Error("marketing should not be targeted")
	}
}
