package libbbb

const (
	// MethodCreate is the API method used to create a meeting.
	MethodCreate = "create"
	// MethodJoin is the API method used to join a meeting.
	MethodJoin = "join"
	// MethodEnd is the API method used to end a meeting.
	MethodEnd = "end"
	// MethodIsMeetingRunning is the API method used to check whether a meeting is running.
	MethodIsMeetingRunning = "isMeetingRunning"
	// MethodGetMeetings is the API method used to list all the meetings.
	MethodGetMeetings = "getMeetings"
	// MethodGetMeetingInfo is the API method used to get the details of a meeting.
	MethodGetMeetingInfo = "getMeetingInfo"
	// MethodGetRecordings is the API method used to list recordings.
	MethodGetRecordings = "getRecordings"
	// MethodPublishRecordings is the API method used to publish or unpublish recordings.
	MethodPublishRecordings = "publishRecordings"
	// MethodDeleteRecordings is the API method used to delete recordings.
	MethodDeleteRecordings = "deleteRecordings"
	// MethodUpdateRecordings is the API method used to update recordings metadata.
	MethodUpdateRecordings = "updateRecordings"
	// MethodGetDefaultConfigXML is the API method used to get the default client configuration.
	MethodGetDefaultConfigXML = "getDefaultConfigXML"
	// MethodSetConfigXML is the API method used to register a custom client configuration.
	MethodSetConfigXML = "setConfigXML"
	// MethodHooksCreate is the API method used to register a webhook.
	MethodHooksCreate = "hooks/create"
	// MethodHooksList is the API method used to list webhooks.
	MethodHooksList = "hooks/list"
	// MethodHooksDestroy is the API method used to remove a webhook.
	MethodHooksDestroy = "hooks/destroy"
)

const (
	// ReturnCodeSuccess is returned by the server when the call succeeded.
	ReturnCodeSuccess = "SUCCESS"
	// ReturnCodeFailed is returned by the server when the call has been rejected.
	ReturnCodeFailed = "FAILED"
)

const (
	// RoleModerator is the role of a moderator attendee.
	RoleModerator = "MODERATOR"
	// RoleViewer is the role of a regular attendee.
	RoleViewer = "VIEWER"
)

const (
	// RecordingStateProcessing means the recording is being processed.
	RecordingStateProcessing = "processing"
	// RecordingStateProcessed means the recording has been processed but not published.
	RecordingStateProcessed = "processed"
	// RecordingStatePublished means the recording is available.
	RecordingStatePublished = "published"
	// RecordingStateUnpublished means the recording has been hidden.
	RecordingStateUnpublished = "unpublished"
	// RecordingStateDeleted means the recording has been deleted.
	RecordingStateDeleted = "deleted"
)
