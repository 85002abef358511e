// Package schema is the typed row mapping of the coaching application's public schema.
//
// It mirrors the database as generated from the live project and carries no
// behavior beyond column bookkeeping. Nullable columns are pointers.
package schema

// Table names in the public schema.
const (
	TableAIAgents           = "ai_agents"
	TableAIInteractions     = "ai_interactions"
	TableBadges             = "badges"
	TableClientBadges       = "client_badges"
	TableClientProgress     = "client_progress"
	TableClients            = "clients"
	TableCoaches            = "coaches"
	TableExercises          = "exercises"
	TableFeedback           = "feedback"
	TableGamification       = "gamification"
	TablePaymentHistory     = "payment_history"
	TablePerformanceMetrics = "performance_metrics"
	TableRoles              = "roles"
	TableSubscriptionPlans  = "subscription_plans"
	TableTrainerProfiles    = "trainer_profiles"
	TableUserSettings       = "user_settings"
	TableUserSubscriptions  = "user_subscriptions"
	TableUsers              = "users"
	TableWorkoutExercises   = "workout_exercises"
	TableWorkoutSessions    = "workout_sessions"
	TableWorkouts           = "workouts"
)

// Tables lists every table of the public schema in alphabetical order.
func Tables() []string {
	return []string{
		TableAIAgents,
		TableAIInteractions,
		TableBadges,
		TableClientBadges,
		TableClientProgress,
		TableClients,
		TableCoaches,
		TableExercises,
		TableFeedback,
		TableGamification,
		TablePaymentHistory,
		TablePerformanceMetrics,
		TableRoles,
		TableSubscriptionPlans,
		TableTrainerProfiles,
		TableUserSettings,
		TableUserSubscriptions,
		TableUsers,
		TableWorkoutExercises,
		TableWorkoutSessions,
		TableWorkouts,
	}
}

// Relationship is a foreign key from Table.Column to ReferencedTable.ReferencedColumn.
type Relationship struct {
	Name             string
	Table            string
	Column           string
	ReferencedTable  string
	ReferencedColumn string
	OneToOne         bool
}

// Relationships lists the foreign keys of the public schema.
func Relationships() []Relationship {
	return []Relationship{
		{Name: "ai_agents_coach_id_fkey", Table: TableAIAgents, Column: "coach_id", ReferencedTable: TableCoaches, ReferencedColumn: "coach_id"},
		{Name: "ai_interactions_ai_agent_id_fkey", Table: TableAIInteractions, Column: "ai_agent_id", ReferencedTable: TableAIAgents, ReferencedColumn: "ai_agent_id"},
		{Name: "ai_interactions_client_id_fkey", Table: TableAIInteractions, Column: "client_id", ReferencedTable: TableClients, ReferencedColumn: "client_id"},
		{Name: "ai_interactions_session_id_fkey", Table: TableAIInteractions, Column: "session_id", ReferencedTable: TableWorkoutSessions, ReferencedColumn: "session_id"},
		{Name: "client_badges_badge_id_fkey", Table: TableClientBadges, Column: "badge_id", ReferencedTable: TableBadges, ReferencedColumn: "badge_id"},
		{Name: "client_badges_client_id_fkey", Table: TableClientBadges, Column: "client_id", ReferencedTable: TableClients, ReferencedColumn: "client_id"},
		{Name: "client_progress_client_id_fkey", Table: TableClientProgress, Column: "client_id", ReferencedTable: TableClients, ReferencedColumn: "client_id"},
		{Name: "clients_client_id_fkey", Table: TableClients, Column: "client_id", ReferencedTable: TableUsers, ReferencedColumn: "id", OneToOne: true},
		{Name: "clients_coach_id_fkey", Table: TableClients, Column: "coach_id", ReferencedTable: TableCoaches, ReferencedColumn: "coach_id"},
		{Name: "coaches_coach_id_fkey", Table: TableCoaches, Column: "coach_id", ReferencedTable: TableUsers, ReferencedColumn: "id", OneToOne: true},
		{Name: "feedback_exercise_id_fkey", Table: TableFeedback, Column: "exercise_id", ReferencedTable: TableExercises, ReferencedColumn: "exercise_id"},
		{Name: "feedback_session_id_fkey", Table: TableFeedback, Column: "session_id", ReferencedTable: TableWorkoutSessions, ReferencedColumn: "session_id"},
		{Name: "gamification_client_id_fkey", Table: TableGamification, Column: "client_id", ReferencedTable: TableClients, ReferencedColumn: "client_id"},
		{Name: "payment_history_subscription_id_fkey", Table: TablePaymentHistory, Column: "subscription_id", ReferencedTable: TableUserSubscriptions, ReferencedColumn: "subscription_id"},
		{Name: "performance_metrics_exercise_id_fkey", Table: TablePerformanceMetrics, Column: "exercise_id", ReferencedTable: TableExercises, ReferencedColumn: "exercise_id"},
		{Name: "performance_metrics_session_id_fkey", Table: TablePerformanceMetrics, Column: "session_id", ReferencedTable: TableWorkoutSessions, ReferencedColumn: "session_id"},
		{Name: "user_settings_user_id_fkey", Table: TableUserSettings, Column: "user_id", ReferencedTable: TableUsers, ReferencedColumn: "id"},
		{Name: "user_subscriptions_plan_id_fkey", Table: TableUserSubscriptions, Column: "plan_id", ReferencedTable: TableSubscriptionPlans, ReferencedColumn: "plan_id"},
		{Name: "user_subscriptions_user_id_fkey", Table: TableUserSubscriptions, Column: "user_id", ReferencedTable: TableUsers, ReferencedColumn: "id"},
		{Name: "users_role_id_fkey", Table: TableUsers, Column: "role_id", ReferencedTable: TableRoles, ReferencedColumn: "role_id"},
		{Name: "workout_exercises_exercise_id_fkey", Table: TableWorkoutExercises, Column: "exercise_id", ReferencedTable: TableExercises, ReferencedColumn: "exercise_id"},
		{Name: "workout_exercises_workout_id_fkey", Table: TableWorkoutExercises, Column: "workout_id", ReferencedTable: TableWorkouts, ReferencedColumn: "workout_id"},
		{Name: "workout_sessions_client_id_fkey", Table: TableWorkoutSessions, Column: "client_id", ReferencedTable: TableClients, ReferencedColumn: "client_id"},
		{Name: "workout_sessions_workout_id_fkey", Table: TableWorkoutSessions, Column: "workout_id", ReferencedTable: TableWorkouts, ReferencedColumn: "workout_id"},
		{Name: "workouts_creator_id_fkey", Table: TableWorkouts, Column: "creator_id", ReferencedTable: TableCoaches, ReferencedColumn: "coach_id"},
	}
}

// RelationshipsFrom returns the foreign keys declared on table.
func RelationshipsFrom(table string) []Relationship {
	var out []Relationship
	for _, rel := range Relationships() {
		if rel.Table == table {
			out = append(out, rel)
		}
	}
	return out
}
