package fixtures

import (
	"github.com/opspulse/opspulse-backend-go/internal/domain/team"
)

// ==========================================
// DEFAULT TEAM CATALOG
// ==========================================
//
// The three built-in teams are sample data for the reference deployment; the
// catalog accepts any number of teams as long as they validate.

func sharedGoals(extraName string, extraTarget float64) map[team.LocationType]team.GoalSet {
	return map[team.LocationType]team.GoalSet{
		team.LocationOnshore: {
			DailyHours:  8.0,
			WeeklyHours: 40.0,
			ExtraName:   extraName,
			ExtraTarget: extraTarget,
		},
		team.LocationOffshore: {
			DailyHours:  8.8,
			WeeklyHours: 44.0,
			ExtraName:   extraName,
			ExtraTarget: extraTarget,
		},
	}
}

// DefaultTeams returns the built-in team configurations.
func DefaultTeams() []team.TeamConfig {
	return []team.TeamConfig{
		{
			ID:          "database-operations",
			Name:        "Database Operations",
			Icon:        "database",
			Color:       "#2E8B57",
			Description: "Database monitoring, troubleshooting, maintenance, and operational excellence.",
			Activities: []team.ActivityDef{
				{ID: "internal_meetings", Name: "Internal Meetings", Icon: "users", Category: "Communication"},
				{ID: "client_meetings", Name: "Client Meetings", Icon: "handshake", Category: "Communication"},
				{ID: "troubleshooting", Name: "Troubleshooting Activities", Icon: "wrench", Category: "Operations"},
				{ID: "sop_creation", Name: "SOP Creation", Icon: "clipboard", Category: "Documentation"},
				{ID: "knowledge_base", Name: "Knowledge Base Creation", Icon: "books", Category: "Documentation"},
				{ID: "monitoring", Name: "System Monitoring", Icon: "chart", Category: "Operations"},
				{ID: "db_readiness", Name: "DB Readiness Activities", Icon: "check", Category: "Operations"},
				{ID: "coordination", Name: "Team Coordination", Icon: "cycle", Category: "Communication"},
				{ID: "patching", Name: "Patching Activities", Icon: "hammer", Category: "Operations"},
				{ID: "terraform_code", Name: "Terraform Development", Icon: "gear", Category: "Development"},
				{ID: "automation", Name: "Process Automation", Icon: "robot", Category: "Development"},
				{ID: "training", Name: "Training & Learning", Icon: "graduation", Category: "Development"},
			},
			Goals: sharedGoals("monthly_productivity", 85.0),
		},
		{
			ID:          "migration-factory",
			Name:        "Database Migration Factory",
			Icon:        "cycle",
			Color:       "#FF6347",
			Description: "Database migration projects, data transfer, and migration process optimization.",
			Activities: []team.ActivityDef{
				{ID: "internal_meetings", Name: "Internal Meetings", Icon: "users", Category: "Communication"},
				{ID: "client_meetings", Name: "Client Meetings", Icon: "handshake", Category: "Communication"},
				{ID: "migration_activities", Name: "Migration Execution", Icon: "truck", Category: "Operations"},
				{ID: "sop_creation", Name: "SOP Creation", Icon: "clipboard", Category: "Documentation"},
				{ID: "knowledge_base", Name: "Knowledge Base Creation", Icon: "books", Category: "Documentation"},
				{ID: "monitoring", Name: "Migration Monitoring", Icon: "chart", Category: "Operations"},
				{ID: "db_readiness", Name: "Pre-Migration Readiness", Icon: "check", Category: "Operations"},
				{ID: "coordination", Name: "Project Coordination", Icon: "cycle", Category: "Communication"},
				{ID: "handover_activities", Name: "Project Handover", Icon: "hands", Category: "Operations"},
				{ID: "terraform_code", Name: "Infrastructure as Code", Icon: "gear", Category: "Development"},
				{ID: "testing", Name: "Migration Testing", Icon: "flask", Category: "Operations"},
				{ID: "rollback_planning", Name: "Rollback Planning", Icon: "undo", Category: "Operations"},
			},
			Goals: sharedGoals("migration_success_rate", 95.0),
		},
		{
			ID:          "backoffice-cloud",
			Name:        "Back Office Cloud Operations",
			Icon:        "cloud",
			Color:       "#4169E1",
			Description: "Cloud infrastructure management and seamless service delivery.",
			Activities: []team.ActivityDef{
				{ID: "internal_meetings", Name: "Internal Meetings", Icon: "users", Category: "Communication"},
				{ID: "client_meetings", Name: "Client Meetings", Icon: "handshake", Category: "Communication"},
				{ID: "troubleshooting", Name: "Issue Resolution", Icon: "wrench", Category: "Operations"},
				{ID: "sop_creation", Name: "SOP Creation", Icon: "clipboard", Category: "Documentation"},
				{ID: "knowledge_base", Name: "Knowledge Management", Icon: "books", Category: "Documentation"},
				{ID: "monitoring", Name: "Cloud Monitoring", Icon: "chart", Category: "Operations"},
				{ID: "infrastructure_mgmt", Name: "Infrastructure Management", Icon: "building", Category: "Operations"},
				{ID: "coordination", Name: "Team Coordination", Icon: "cycle", Category: "Communication"},
				{ID: "patching", Name: "System Patching", Icon: "hammer", Category: "Operations"},
				{ID: "terraform_code", Name: "Infrastructure Code", Icon: "gear", Category: "Development"},
				{ID: "security_review", Name: "Security Reviews", Icon: "lock", Category: "Operations"},
				{ID: "cost_optimization", Name: "Cost Optimization", Icon: "money", Category: "Operations"},
			},
			Goals: sharedGoals("uptime_target", 99.9),
		},
	}
}
