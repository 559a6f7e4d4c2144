// Package schema describes the relational layout of the store in the form
// ent's migration engine consumes.
package schema

import (
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table names
const (
	UsersTable        = "users"
	TeamsTable        = "teams"
	TeamMembersTable  = "team_members"
	CampaignsTable    = "campaigns"
	ClipsTable        = "clips"
	AnalyticsTable    = "analytics"
	ApplicationsTable = "applications"
	MessagesTable     = "messages"
	SessionsTable     = "sessions"
)

const textSize = 2147483647

var (
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "profile_image_url", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"client", "clipper", "manager", "admin"}, Default: "clipper"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// Users holds the schema information for the "users" table.
	Users = &schema.Table{
		Name:       UsersTable,
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}

	// TeamsColumns holds the columns for the "teams" table.
	TeamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "client_id", Type: field.TypeString},
		{Name: "manager_id", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: textSize},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// Teams holds the schema information for the "teams" table.
	Teams = &schema.Table{
		Name:       TeamsTable,
		Columns:    TeamsColumns,
		PrimaryKey: []*schema.Column{TeamsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "teams_users_client",
				Columns:    []*schema.Column{TeamsColumns[2]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "teams_users_manager",
				Columns:    []*schema.Column{TeamsColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{Name: "team_client_id", Columns: []*schema.Column{TeamsColumns[2]}},
			{Name: "team_manager_id", Columns: []*schema.Column{TeamsColumns[3]}},
		},
	}

	// TeamMembersColumns holds the columns for the "team_members" table.
	TeamMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "team_id", Type: field.TypeString},
		{Name: "clipper_id", Type: field.TypeString},
		{Name: "joined_at", Type: field.TypeTime},
	}
	// TeamMembers holds the schema information for the "team_members" table.
	TeamMembers = &schema.Table{
		Name:       TeamMembersTable,
		Columns:    TeamMembersColumns,
		PrimaryKey: []*schema.Column{TeamMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "team_members_teams_members",
				Columns:    []*schema.Column{TeamMembersColumns[1]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "team_members_users_memberships",
				Columns:    []*schema.Column{TeamMembersColumns[2]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{Name: "teammember_team_id_clipper_id", Unique: true, Columns: []*schema.Column{TeamMembersColumns[1], TeamMembersColumns[2]}},
		},
	}

	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "client_id", Type: field.TypeString},
		{Name: "team_id", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: textSize},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// Campaigns holds the schema information for the "campaigns" table.
	Campaigns = &schema.Table{
		Name:       CampaignsTable,
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "campaigns_users_campaigns",
				Columns:    []*schema.Column{CampaignsColumns[2]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "campaigns_teams_campaigns",
				Columns:    []*schema.Column{CampaignsColumns[3]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{Name: "campaign_client_id", Columns: []*schema.Column{CampaignsColumns[2]}},
			{Name: "campaign_team_id", Columns: []*schema.Column{CampaignsColumns[3]}},
		},
	}

	// ClipsColumns holds the columns for the "clips" table.
	ClipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: textSize},
		{Name: "file_path", Type: field.TypeString, Nullable: true},
		{Name: "thumbnail_path", Type: field.TypeString, Nullable: true},
		{Name: "campaign_id", Type: field.TypeString},
		{Name: "clipper_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "needs_revision"}, Default: "pending"},
		{Name: "views", Type: field.TypeInt, Default: 0},
		{Name: "likes", Type: field.TypeInt, Default: 0},
		{Name: "shares", Type: field.TypeInt, Default: 0},
		{Name: "platform", Type: field.TypeString, Nullable: true},
		{Name: "platform_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// Clips holds the schema information for the "clips" table.
	Clips = &schema.Table{
		Name:       ClipsTable,
		Columns:    ClipsColumns,
		PrimaryKey: []*schema.Column{ClipsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "clips_campaigns_clips",
				Columns:    []*schema.Column{ClipsColumns[5]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "clips_users_clips",
				Columns:    []*schema.Column{ClipsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{Name: "clip_clipper_id", Columns: []*schema.Column{ClipsColumns[6]}},
			{Name: "clip_status", Columns: []*schema.Column{ClipsColumns[7]}},
		},
	}

	// AnalyticsColumns holds the columns for the "analytics" table.
	AnalyticsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "clip_id", Type: field.TypeString},
		{Name: "platform", Type: field.TypeString},
		{Name: "views", Type: field.TypeInt, Default: 0},
		{Name: "likes", Type: field.TypeInt, Default: 0},
		{Name: "shares", Type: field.TypeInt, Default: 0},
		{Name: "comments", Type: field.TypeInt, Default: 0},
		{Name: "engagement_rate", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{dialect.Postgres: "numeric(5,2)"}},
		{Name: "recorded_at", Type: field.TypeTime},
	}
	// Analytics holds the schema information for the "analytics" table.
	Analytics = &schema.Table{
		Name:       AnalyticsTable,
		Columns:    AnalyticsColumns,
		PrimaryKey: []*schema.Column{AnalyticsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "analytics_clips_analytics",
				Columns:    []*schema.Column{AnalyticsColumns[1]},
				RefColumns: []*schema.Column{ClipsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{Name: "analytics_clip_id_recorded_at", Columns: []*schema.Column{AnalyticsColumns[1], AnalyticsColumns[8]}},
		},
	}

	// ApplicationsColumns holds the columns for the "applications" table.
	ApplicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "platform", Type: field.TypeString, Nullable: true},
		{Name: "experience", Type: field.TypeString, Nullable: true},
		{Name: "social_links", Type: field.TypeString, Nullable: true, Size: textSize},
		{Name: "why_choose_you", Type: field.TypeString, Size: textSize},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// Applications holds the schema information for the "applications" table.
	Applications = &schema.Table{
		Name:       ApplicationsTable,
		Columns:    ApplicationsColumns,
		PrimaryKey: []*schema.Column{ApplicationsColumns[0]},
	}

	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sender_id", Type: field.TypeString},
		{Name: "recipient_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: textSize},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// Messages holds the schema information for the "messages" table.
	Messages = &schema.Table{
		Name:       MessagesTable,
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_users_sent",
				Columns:    []*schema.Column{MessagesColumns[1]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "messages_users_received",
				Columns:    []*schema.Column{MessagesColumns[2]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}

	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "sid", Type: field.TypeString},
		{Name: "sess", Type: field.TypeJSON},
		{Name: "expire", Type: field.TypeTime},
	}
	// Sessions holds the schema information for the "sessions" table.
	Sessions = &schema.Table{
		Name:       SessionsTable,
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "IDX_session_expire", Columns: []*schema.Column{SessionsColumns[2]}},
		},
	}

	// Tables holds all the tables in the schema, parents first.
	Tables = []*schema.Table{
		Users,
		Teams,
		TeamMembers,
		Campaigns,
		Clips,
		Analytics,
		Applications,
		Messages,
		Sessions,
	}
)

func init() {
	Teams.ForeignKeys[0].RefTable = Users
	Teams.ForeignKeys[1].RefTable = Users
	TeamMembers.ForeignKeys[0].RefTable = Teams
	TeamMembers.ForeignKeys[1].RefTable = Users
	Campaigns.ForeignKeys[0].RefTable = Users
	Campaigns.ForeignKeys[1].RefTable = Teams
	Clips.ForeignKeys[0].RefTable = Campaigns
	Clips.ForeignKeys[1].RefTable = Users
	Analytics.ForeignKeys[0].RefTable = Clips
	Messages.ForeignKeys[0].RefTable = Users
	Messages.ForeignKeys[1].RefTable = Users
}
