package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/catalog"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/scoring"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DATABASE")
	if dbName == "" {
		dbName = "qobouli"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)
	sessionColl := db.Collection("quiz_sessions")
	leadColl := db.Collection("leads")

	scorer := scoring.NewScorer()
	picker := scoring.NewProgramPicker(catalog.Programs)

	// A tech-leaning respondent
	answers := []model.Answer{
		{QuestionID: catalog.QuestionSubjects, Response: model.ResponseData{RankedOptions: []string{"computer", "math", "physics"}}},
		{QuestionID: catalog.QuestionProblemSolving, Response: model.ResponseData{SelectedOption: "logical"}},
		{QuestionID: catalog.QuestionTeamRole, Response: model.ResponseData{SelectedOption: "coder"}},
		{QuestionID: catalog.QuestionGradeBand, Response: model.ResponseData{SelectedOption: "85-94"}},
		{QuestionID: catalog.QuestionInterestTech, Response: model.ResponseData{ScaleValue: 5}},
	}

	scoreResult := scorer.Score(answers)
	topSlugs := make([]string, 0, len(scoreResult.SortedMajors))
	for _, rec := range scoreResult.SortedMajors {
		topSlugs = append(topSlugs, rec.Slug)
	}

	now := time.Now()
	session := model.QuizSession{
		ID:      uuid.NewString(),
		Locale:  model.LocaleEN,
		Answers: answers,
		Result: &model.QuizResult{
			SortedMajors: scoreResult.SortedMajors,
			Badge:        catalog.BadgeFor(scoreResult.SortedMajors[0].Slug),
			Boosters:     scoreResult.Boosters,
			Profile:      scoreResult.Profile,
			Wildcard:     scoreResult.Wildcard,
			Programs:     picker.Pick(topSlugs),
			Explanations: scoring.BuildExplanations(scoreResult.Boosters, model.LocaleEN),
		},
		CreatedAt:   now,
		CompletedAt: &now,
	}

	if _, err := sessionColl.InsertOne(ctx, session); err != nil {
		log.Fatalf("Failed to insert session: %v", err)
	}

	lead := model.Lead{
		ID:           "lead_" + uuid.NewString()[:8],
		Name:         "Demo Student",
		Phone:        "+905551234567",
		MajorSlug:    scoreResult.SortedMajors[0].Slug,
		SessionID:    session.ID,
		WhatsAppLink: "https://wa.me/905551112233?text=Hi%2C%20I%20took%20the%20quiz",
		CreatedAt:    now,
	}

	if _, err := leadColl.InsertOne(ctx, lead); err != nil {
		log.Fatalf("Failed to insert lead: %v", err)
	}

	fmt.Printf("Seeded session %s (top major %s) and lead %s\n", session.ID, lead.MajorSlug, lead.ID)
}
