package dto

type IngestFaqResponse struct {
	Published int `json:"published"`
}

// FaqEmbedJob is the payload of one embed task on the ingest topic.
type FaqEmbedJob struct {
	EntryId  string `json:"entry_id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
