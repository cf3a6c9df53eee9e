package service

import "github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"

// Broadcaster pushes live events to the admin dashboard (implemented by the ws hub)
type Broadcaster interface {
	BroadcastSessionCompleted(session *model.QuizSession)
	BroadcastLeadSubmitted(lead *model.Lead)
}
