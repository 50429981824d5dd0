// Package types contains common types used across the application
package types

// Standing is one ranking row derived from all judges' entries for a team.
type Standing struct {
	TeamID     string `json:"teamId"`
	TeamName   string `json:"teamName"`
	Total      int    `json:"total"`
	JudgeCount int    `json:"judgeCount"`
}
