package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/hireai/matchworker/internal/analyzer"
)

const serviceVersion = "1.0.0"

type parseResumeReq struct {
	ResumeText string `json:"resume_text"`
}

type calculateMatchReq struct {
	ResumeText   string   `json:"resumeText"`
	JobText      string   `json:"jobText"`
	ResumeSkills []string `json:"resumeSkills"`
	JobSkills    []string `json:"jobSkills"`
}

type analyzeJobReq struct {
	JobText string `json:"jobText"`
}

// StartAPIServer exposes the analyzer over HTTP so callers that already hold
// plain text can score without going through the queue.
func (workerConfig *WorkerConfig) StartAPIServer() {
	app := workerConfig.apiApp()
	if err := app.Listen(":" + workerConfig.APIPort); err != nil {
		log.Fatal("api server failed: ", err)
	}
}

func (workerConfig *WorkerConfig) apiApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "HireAI Match Worker",
	})

	app.Get("/api/ml/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "HireAI Match Worker",
			"version": serviceVersion,
		})
	})

	app.Post("/api/ml/parse-resume", func(c *fiber.Ctx) error {
		var req parseResumeReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}

		parsed, err := workerConfig.Analyzer.ParseText(req.ResumeText)
		if err != nil {
			if errors.Is(err, analyzer.ErrEmptyText) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Empty resume text"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse resume"})
		}

		return c.JSON(fiber.Map{
			"rawText":    req.ResumeText,
			"skills":     parsed.Skills,
			"experience": parsed.Experience,
			"education":  parsed.Education,
			"textLength": parsed.TextLength,
		})
	})

	app.Post("/api/ml/calculate-match", func(c *fiber.Ctx) error {
		var req calculateMatchReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}

		match, err := workerConfig.Analyzer.ComputeMatch(req.ResumeText, req.JobText, req.JobSkills, req.ResumeSkills)
		if err != nil {
			if errors.Is(err, analyzer.ErrMissingText) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing resume text or job text"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to calculate match"})
		}

		return c.JSON(fiber.Map{
			"score":         match.OverallScore,
			"matchedSkills": match.MatchedSkills,
			"missingSkills": match.MissingSkills,
			"suggestions":   match.Suggestions,
			"details": fiber.Map{
				"textSimilarity": match.TextSimilarity,
				"skillMatch":     match.SkillMatch,
				"atsScore":       match.ATSScore,
			},
		})
	})

	app.Post("/api/ml/analyze-job", func(c *fiber.Ctx) error {
		var req analyzeJobReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}

		parsed, err := workerConfig.Analyzer.ParseText(req.JobText)
		if err != nil {
			if errors.Is(err, analyzer.ErrEmptyText) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing job text"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to analyze job"})
		}

		return c.JSON(fiber.Map{
			"skills":     parsed.Skills,
			"experience": parsed.Experience,
			"textLength": parsed.TextLength,
		})
	})

	return app
}
