package constvars

const (
	ResponseUnknown = "unknown"

	SupplyRequestPreviewSuccess = "supply request built successfully"
	SupplyRequestSendSuccess    = "supply request sent successfully"
	StepNavigationSuccess       = "step path resolved successfully"
	DraftCreateSuccess          = "draft created successfully"
	DraftGetSuccess             = "get draft successfully"
	DraftSaveStepSuccess        = "draft step saved successfully"
	DraftSubmitSuccess          = "draft submitted successfully"
)
