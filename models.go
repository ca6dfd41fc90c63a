package main

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"github.com/hireai/matchworker/internal/analyzer"
	"github.com/hireai/matchworker/internal/database"
	"github.com/streadway/amqp"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type WorkerConfig struct {
	DB          *database.Queries
	R2          *R2Config
	AwsConfig   *aws.Config
	RabbitConn  *amqp.Connection
	RABBITMQUrl string
	Analyzer    *analyzer.Analyzer
	APIPort     string
}

// ResumeMatch is one resume's scoring outcome within a session. Failed
// resumes produce an error entry instead of aborting the whole session.
type ResumeMatch struct {
	ResumeID         uuid.UUID `json:"resume_id"`
	OriginalFilename string    `json:"original_filename"`
	MatchScore       int       `json:"match_score"`
	ATSScore         int       `json:"ats_score"`
	MatchedSkills    []string  `json:"matched_skills"`
	MissingSkills    []string  `json:"missing_skills"`
	Suggestions      []string  `json:"suggestions"`
	TextSimilarity   float64   `json:"text_similarity"`
	SkillMatch       float64   `json:"skill_match_percentage"`
	Experience       string    `json:"experience"`
	Education        []string  `json:"education"`
	// Error result entry
	IsErrorResult bool   `json:"is_error_result"`
	Error         string `json:"error,omitempty"`
}

type SessionResults struct {
	ID        uuid.UUID     `json:"id"`
	Results   []ResumeMatch `json:"results" db:"results"`
	CreatedAt time.Time     `json:"created_at"`
	SessionID uuid.UUID     `json:"session_id"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type Session struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Name           string    `json:"name"`
	UserID         uuid.UUID `json:"user_id"`
	Status         string    `json:"status"`
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description"`
	JobSkills      []string  `json:"job_skills"`
}
