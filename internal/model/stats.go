package model

// Stats are the dashboard aggregate counts. ActiveCampaigns is a constant 0
// until campaign tracking exists as a first-class entity.
type Stats struct {
	TotalMessages   int64 `json:"totalMessages"`
	SentMessages    int64 `json:"sentMessages"`
	FailedMessages  int64 `json:"failedMessages"`
	TotalContacts   int64 `json:"totalContacts"`
	TotalBatches    int64 `json:"totalBatches"`
	ActiveCampaigns int64 `json:"activeCampaigns"`
}
