package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hireai/matchworker/internal/database"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"
)

// retry retries a function up to `attempts` times with exponential backoff
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		wait := time.Duration(500*(i+1)) * time.Millisecond
		time.Sleep(wait)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// errorResult records a resume that could not be scored.
func errorResult(resume database.Resume, msg string) ResumeMatch {
	return ResumeMatch{
		ResumeID:         resume.ID,
		OriginalFilename: resume.OriginalFilename,
		IsErrorResult:    true,
		Error:            msg,
	}
}

// analyzeSession scores every resume in a session against the session's job
// description. It handles downloading, text extraction, match scoring, and
// DB persistence. Per-resume failures become error entries; only session
// level failures (DB, marshal) are returned.
func analyzeSession(currentSession Session, workerConfig *WorkerConfig) error {
	ctx := context.Background()
	// get resumes in session
	resumes, err := workerConfig.DB.GetResumesBySession(ctx, currentSession.ID)
	if err != nil {
		return fmt.Errorf("error getting resumes for session: %v, err: %v", currentSession.ID, err)
	}

	jobText := currentSession.JobTitle + "\n\n" + currentSession.JobDescription

	results := &SessionResults{
		SessionID: currentSession.ID,
	}

	awsClient := s3.NewFromConfig(*workerConfig.AwsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", workerConfig.R2.AccountID))
	})

	// process each resume
	for _, resume := range resumes {
		// Retry downloading file (network failures are transient)
		fileBytes, err := retry(3, func() ([]byte, error) {
			return DownloadFromR2(ctx, awsClient, workerConfig.R2.Bucket, resume.ObjectKey)
		})
		if err != nil {
			log.Printf("failed to download %s after retries: %v", resume.ObjectKey, err)
			results.Results = append(results.Results, errorResult(resume, fmt.Sprintf("file download error: %v", err)))
			continue
		}

		// Extract text from file
		resumeText, err := ExtractResumeText(resume.Mime, fileBytes)
		if err != nil {
			log.Printf("text extraction failed for %s: %v", resume.ObjectKey, err)
			results.Results = append(results.Results, errorResult(resume, fmt.Sprintf("text extraction error: %v", err)))
			continue
		}

		match, err := workerConfig.Analyzer.ComputeMatch(resumeText, jobText, currentSession.JobSkills, nil)
		if err != nil {
			// empty extracted text is the only way to get here
			log.Printf("match scoring failed for %s: %v", resume.ObjectKey, err)
			results.Results = append(results.Results, errorResult(resume, fmt.Sprintf("match scoring error: %v", err)))
			continue
		}

		// Experience and education come from a separate parse of the
		// resume text; parse errors are impossible once ComputeMatch
		// accepted the same text.
		experience := "Not specified"
		education := []string{"Not specified"}
		if parsed, err := workerConfig.Analyzer.ParseText(resumeText); err == nil {
			experience = parsed.Experience
			education = parsed.Education
		}

		results.Results = append(results.Results, ResumeMatch{
			ResumeID:         resume.ID,
			OriginalFilename: resume.OriginalFilename,
			MatchScore:       match.OverallScore,
			ATSScore:         match.ATSScore,
			MatchedSkills:    match.MatchedSkills,
			MissingSkills:    match.MissingSkills,
			Suggestions:      match.Suggestions,
			TextSimilarity:   match.TextSimilarity,
			SkillMatch:       match.SkillMatch,
			Experience:       experience,
			Education:        education,
		})
	}
	log.Println("session id: " + currentSession.ID.String() + " analyzed")

	// save final result to db
	resultsJSON, err := json.Marshal(results.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal session results: %w", err)
	}

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.CreateOrUpdateMatchResults(ctx, database.CreateOrUpdateMatchResultsParams{
			Results:   resultsJSON,
			SessionID: results.SessionID,
		})
	})
	if err != nil {
		return fmt.Errorf("failed to save match results after retries: %w", err)
	}

	return nil
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	//    to consume message on the queue
	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		log.Fatal("error dialling rabbitmq: " + err.Error())
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error connecting to rabbitmq channel: " + err.Error())
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		"sessions", // queue name
		true,       // durable (survives broker restarts)
		false,      // auto-delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		"sessions", // queue name
		"",         // consumer tag
		true,       // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq message: " + err.Error())
	}

	for msg := range msgs {
		// Unmarshal the body
		session := Session{}
		err = json.Unmarshal(msg.Body, &session)
		if err != nil {
			log.Printf("error unmarshalling message body. err: %v", err)
			markSessionFailed(workerConfig, session)
			continue
		}
		log.Printf("Worker %d processing session. session_id: %s", id+1, session.ID)

		update := map[string]any{
			"session_id": session.ID,
			"status":     "processing",
			"message":    "analysis started",
			"timestamp":  time.Now(),
		}
		err := publishSessionUpdate(workerConfig.RabbitConn, session.ID.String(), update)
		if err != nil {
			log.Println("failed to publish update:", err)
		}
		workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
			Status: "processing",
			ID:     session.ID,
		})

		err = analyzeSession(session, workerConfig)
		if err != nil {
			log.Printf("error analyzing session_id: %v. err: %v", session.ID, err)
			markSessionFailed(workerConfig, session)
			continue
		}

		// update session status
		workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
			Status: "completed",
			ID:     session.ID,
		})
		update = map[string]any{
			"session_id": session.ID,
			"status":     "completed",
			"message":    "analysis completed",
			"timestamp":  time.Now(),
		}
		err = publishSessionUpdate(workerConfig.RabbitConn, session.ID.String(), update)
		if err != nil {
			log.Println("failed to publish update:", err)
		}
	}
}

func markSessionFailed(workerConfig *WorkerConfig, session Session) {
	workerConfig.DB.UpdateSessionStatus(context.Background(), database.UpdateSessionStatusParams{
		Status: "failed",
		ID:     session.ID,
	})
	update := map[string]any{
		"session_id": session.ID,
		"status":     "failed",
		"message":    "analysis failed",
		"timestamp":  time.Now(),
	}
	if err := publishSessionUpdate(workerConfig.RabbitConn, session.ID.String(), update); err != nil {
		log.Println("failed to publish update:", err)
	}
}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := 0; i < numWorkers; i++ {
		log.Println("worker id ", i+1, "started")
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish
}
