package constants

// Context keys set by middleware
const (
	ContextKeyUser      = "user"
	ContextKeyUserID    = "userID"
	ContextKeySessionID = "sessionID"
	ContextKeyDecision  = "decision"
	ContextKeyRequestID = "RequestID"
)

// Context keys for validated requests
const (
	ContextKeyLogin = "login"

	ContextKeyCreateApplication       = "createApplication"
	ContextKeyUpdateApplicationStatus = "updateApplicationStatus"

	ContextKeyCreateTeam = "createTeam"
	ContextKeyAddMember  = "addMember"

	ContextKeyCreateCampaign = "createCampaign"

	ContextKeyCreateClip       = "createClip"
	ContextKeyUpdateClipStatus = "updateClipStatus"
	ContextKeyRecordAnalytics  = "recordAnalytics"

	ContextKeySendMessage = "sendMessage"
)
