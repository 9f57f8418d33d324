package models

const (
	PlanFree = "Free"
	PlanPro  = "Forfait Pro"
)

const (
	MissionPending    = "Pending"
	MissionInProgress = "In Progress"
	MissionDone       = "Done"
)
