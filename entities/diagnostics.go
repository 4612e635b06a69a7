package entities

import "go.mongodb.org/mongo-driver/bson"

// DatabaseHealth is a snapshot of the database connection state
type DatabaseHealth struct {
	ReadyState int      `json:"readyState"`
	DBName     string   `json:"dbName"`
	DBModels   []string `json:"dbModels"`
	DBHost     string   `json:"dbHost"`
	BootState  string   `json:"bootState"`
}

// DatabaseDump maps collection names to their documents.
// Truncated lists the collections that had more documents than the requested page.
type DatabaseDump struct {
	Data      map[string][]bson.M `json:"data"`
	Truncated []string            `json:"truncated,omitempty"`
}

// DumpParams is the page window applied to every collection of a dump
type DumpParams struct {
	Limit int64 `form:"limit" binding:"min=0"`
	Skip  int64 `form:"skip" binding:"min=0"`
}
