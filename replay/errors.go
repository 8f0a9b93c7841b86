package replay

import "fmt"

type ReplayError struct {
	StepIndex int32          `json:"step_index"`
	Reason    string         `json:"reason"`
	Message   string         `json:"message"`
	Expected  *ExpectedState `json:"expected,omitempty"`
}

type ExpectedState struct {
	Seat         int      `json:"seat"`
	Phase        string   `json:"phase,omitempty"`
	LegalActions []int    `json:"legal_actions,omitempty"`
	LegalNames   []string `json:"legal_names,omitempty"`
}

func (e *ReplayError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("replay error(step=%d reason=%s): %s", e.StepIndex, e.Reason, e.Message)
}
