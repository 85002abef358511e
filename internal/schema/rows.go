package schema

import (
	"encoding/json"
	"time"
)

type AIAgentRow struct {
	AIAgentID    string          `db:"ai_agent_id" json:"ai_agent_id"`
	AgentName    string          `db:"agent_name" json:"agent_name"`
	BrandingInfo json.RawMessage `db:"branding_info" json:"branding_info"`
	CoachID      string          `db:"coach_id" json:"coach_id"`
	CreatedAt    *time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time      `db:"updated_at" json:"updated_at"`
}

type AIInteractionRow struct {
	InteractionID   string     `db:"interaction_id" json:"interaction_id"`
	AIAgentID       string     `db:"ai_agent_id" json:"ai_agent_id"`
	ClientID        string     `db:"client_id" json:"client_id"`
	Content         *string    `db:"content" json:"content"`
	InteractionType string     `db:"interaction_type" json:"interaction_type"`
	SessionID       *string    `db:"session_id" json:"session_id"`
	Timestamp       *time.Time `db:"timestamp" json:"timestamp"`
}

type BadgeRow struct {
	BadgeID     string  `db:"badge_id" json:"badge_id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	IconURL     *string `db:"icon_url" json:"icon_url"`
}

type ClientBadgeRow struct {
	ClientBadgeID string     `db:"client_badge_id" json:"client_badge_id"`
	BadgeID       string     `db:"badge_id" json:"badge_id"`
	ClientID      string     `db:"client_id" json:"client_id"`
	EarnedAt      *time.Time `db:"earned_at" json:"earned_at"`
}

type ClientProgressRow struct {
	ProgressID        string    `db:"progress_id" json:"progress_id"`
	ClientID          string    `db:"client_id" json:"client_id"`
	Date              time.Time `db:"date" json:"date"`
	Weight            *float64  `db:"weight" json:"weight"`
	BodyFatPercentage *float64  `db:"body_fat_percentage" json:"body_fat_percentage"`
	MuscleMass        *float64  `db:"muscle_mass" json:"muscle_mass"`
}

// ClientRow is one-to-one with users through client_id.
type ClientRow struct {
	ClientID               string     `db:"client_id" json:"client_id"`
	CoachID                *string    `db:"coach_id" json:"coach_id"`
	DateOfBirth            *time.Time `db:"date_of_birth" json:"date_of_birth"`
	FitnessGoals           *string    `db:"fitness_goals" json:"fitness_goals"`
	Gender                 *string    `db:"gender" json:"gender"`
	HealthConditions       *string    `db:"health_conditions" json:"health_conditions"`
	Height                 *float64   `db:"height" json:"height"`
	OnboardingCompleted    *bool      `db:"onboarding_completed" json:"onboarding_completed"`
	PreferredActivityLevel *string    `db:"preferred_activity_level" json:"preferred_activity_level"`
	TargetCaloriesPerDay   *int       `db:"target_calories_per_day" json:"target_calories_per_day"`
	Weight                 *float64   `db:"weight" json:"weight"`
}

// CoachRow is one-to-one with users through coach_id.
type CoachRow struct {
	CoachID        string   `db:"coach_id" json:"coach_id"`
	Bio            *string  `db:"bio" json:"bio"`
	Certifications []string `db:"certifications" json:"certifications"`
	Specialties    []string `db:"specialties" json:"specialties"`
}

type ExerciseRow struct {
	ExerciseID      string     `db:"exercise_id" json:"exercise_id"`
	Name            string     `db:"name" json:"name"`
	Description     *string    `db:"description" json:"description"`
	EquipmentNeeded []string   `db:"equipment_needed" json:"equipment_needed"`
	MuscleGroups    []string   `db:"muscle_groups" json:"muscle_groups"`
	VideoURL        *string    `db:"video_url" json:"video_url"`
	CreatedAt       *time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at"`
}

type FeedbackRow struct {
	FeedbackID   string     `db:"feedback_id" json:"feedback_id"`
	Content      string     `db:"content" json:"content"`
	ExerciseID   *string    `db:"exercise_id" json:"exercise_id"`
	FeedbackType string     `db:"feedback_type" json:"feedback_type"`
	SessionID    string     `db:"session_id" json:"session_id"`
	Timestamp    *time.Time `db:"timestamp" json:"timestamp"`
}

type GamificationRow struct {
	GamificationID string `db:"gamification_id" json:"gamification_id"`
	ClientID       string `db:"client_id" json:"client_id"`
	Level          *int   `db:"level" json:"level"`
	Points         *int   `db:"points" json:"points"`
}

type PaymentHistoryRow struct {
	PaymentID       string     `db:"payment_id" json:"payment_id"`
	Amount          float64    `db:"amount" json:"amount"`
	Currency        string     `db:"currency" json:"currency"`
	PaymentDate     *time.Time `db:"payment_date" json:"payment_date"`
	Status          string     `db:"status" json:"status"`
	StripeInvoiceID *string    `db:"stripe_invoice_id" json:"stripe_invoice_id"`
	SubscriptionID  string     `db:"subscription_id" json:"subscription_id"`
}

type PerformanceMetricRow struct {
	MetricID      string   `db:"metric_id" json:"metric_id"`
	ExerciseID    string   `db:"exercise_id" json:"exercise_id"`
	SessionID     string   `db:"session_id" json:"session_id"`
	RepsCompleted *int     `db:"reps_completed" json:"reps_completed"`
	TimeTaken     *float64 `db:"time_taken" json:"time_taken"`
	WeightUsed    *float64 `db:"weight_used" json:"weight_used"`
}

type RoleRow struct {
	RoleID   string `db:"role_id" json:"role_id"`
	RoleName string `db:"role_name" json:"role_name"`
}

type SubscriptionPlanRow struct {
	PlanID       string          `db:"plan_id" json:"plan_id"`
	Name         string          `db:"name" json:"name"`
	BillingCycle string          `db:"billing_cycle" json:"billing_cycle"`
	Description  *string         `db:"description" json:"description"`
	Features     json.RawMessage `db:"features" json:"features"`
	Price        float64         `db:"price" json:"price"`
	CreatedAt    *time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time      `db:"updated_at" json:"updated_at"`
}

type TrainerProfileRow struct {
	ID                 string     `db:"id" json:"id"`
	FullName           string     `db:"full_name" json:"full_name"`
	Nickname           *string    `db:"nickname" json:"nickname"`
	Pronouns           *string    `db:"pronouns" json:"pronouns"`
	CustomPronouns     *string    `db:"custom_pronouns" json:"custom_pronouns"`
	ExperienceLevel    string     `db:"experience_level" json:"experience_level"`
	CoachingExperience *string    `db:"coaching_experience" json:"coaching_experience"`
	Certifications     []string   `db:"certifications" json:"certifications"`
	DescriptiveWords   []string   `db:"descriptive_words" json:"descriptive_words"`
	EquipmentDetails   *string    `db:"equipment_details" json:"equipment_details"`
	Motivation         *string    `db:"motivation" json:"motivation"`
	TrainingPhilosophy []string   `db:"training_philosophy" json:"training_philosophy"`
	UserType           *string    `db:"user_type" json:"user_type"`
	CreatedAt          *time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          *time.Time `db:"updated_at" json:"updated_at"`
}

type UserSettingsRow struct {
	SettingID           string  `db:"setting_id" json:"setting_id"`
	UserID              string  `db:"user_id" json:"user_id"`
	Language            *string `db:"language" json:"language"`
	NotificationEnabled *bool   `db:"notification_enabled" json:"notification_enabled"`
	Theme               *string `db:"theme" json:"theme"`
}

type UserSubscriptionRow struct {
	SubscriptionID       string     `db:"subscription_id" json:"subscription_id"`
	UserID               string     `db:"user_id" json:"user_id"`
	PlanID               string     `db:"plan_id" json:"plan_id"`
	Status               string     `db:"status" json:"status"`
	StartDate            time.Time  `db:"start_date" json:"start_date"`
	EndDate              *time.Time `db:"end_date" json:"end_date"`
	StripeSubscriptionID *string    `db:"stripe_subscription_id" json:"stripe_subscription_id"`
}

// UserRow is the application-owned mirror of an identity.
type UserRow struct {
	ID          string     `db:"id" json:"id"`
	Email       *string    `db:"email" json:"email"`
	FirstName   *string    `db:"first_name" json:"first_name"`
	LastName    *string    `db:"last_name" json:"last_name"`
	Gender      *string    `db:"gender" json:"gender"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth"`
	IsActive    *bool      `db:"is_active" json:"is_active"`
	LastLogin   *time.Time `db:"last_login" json:"last_login"`
	RoleID      string     `db:"role_id" json:"role_id"`
	CreatedAt   *time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at"`
}

type WorkoutExerciseRow struct {
	WorkoutExerciseID string `db:"workout_exercise_id" json:"workout_exercise_id"`
	WorkoutID         string `db:"workout_id" json:"workout_id"`
	ExerciseID        string `db:"exercise_id" json:"exercise_id"`
	OrderNum          int    `db:"order_num" json:"order_num"`
	Reps              *int   `db:"reps" json:"reps"`
	RestTime          *int   `db:"rest_time" json:"rest_time"`
	Sets              *int   `db:"sets" json:"sets"`
}

type WorkoutSessionRow struct {
	SessionID string     `db:"session_id" json:"session_id"`
	ClientID  string     `db:"client_id" json:"client_id"`
	WorkoutID string     `db:"workout_id" json:"workout_id"`
	Status    string     `db:"status" json:"status"`
	StartTime time.Time  `db:"start_time" json:"start_time"`
	EndTime   *time.Time `db:"end_time" json:"end_time"`
	Feedback  *string    `db:"feedback" json:"feedback"`
}

type WorkoutRow struct {
	WorkoutID       string     `db:"workout_id" json:"workout_id"`
	CreatorID       string     `db:"creator_id" json:"creator_id"`
	Name            string     `db:"name" json:"name"`
	Description     *string    `db:"description" json:"description"`
	DifficultyLevel *string    `db:"difficulty_level" json:"difficulty_level"`
	Duration        *int       `db:"duration" json:"duration"`
	CreatedAt       *time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at"`
}
