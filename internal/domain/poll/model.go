package poll

import "context"

// VotingChoice selects how a poll is voted on. The registry stores it
// verbatim.
type VotingChoice int64

type Poll struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	StartDate    int64        `json:"start_date"`
	EndDate      int64        `json:"end_date"`
	VotingChoice VotingChoice `json:"voting_choice"`
	IsStandard   bool         `json:"is_standard"`
	Owner        int64        `json:"owner"`
	ProposalIDs  []int64      `json:"proposal_ids"`
}

// ActiveAt reports whether proposals may still be submitted at now
// (unix seconds). An EndDate of zero means the poll never ends.
func (p *Poll) ActiveAt(now int64) bool {
	return p.EndDate == 0 || now <= p.EndDate
}

func (p *Poll) clone() Poll {
	c := *p
	c.ProposalIDs = make([]int64, len(p.ProposalIDs))
	copy(c.ProposalIDs, p.ProposalIDs)
	return c
}

type Proposal struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Author      int64  `json:"author"`
	PollID      int64  `json:"poll_id"`
	Activated   bool   `json:"activated"`
}

// CreatePollInput carries everything CreatePoll needs besides the caller.
type CreatePollInput struct {
	Name         string
	Description  string
	StartDate    int64
	EndDate      int64
	VotingChoice VotingChoice
	IsStandard   bool
	// Fixed is the proposal set of a standard poll, created together
	// with it.
	Fixed []FixedProposal
}

type FixedProposal struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Journal persists registry mutations. Every Append/Mark call happens
// before the in-memory commit, so a failing journal aborts the operation.
type Journal interface {
	AppendPoll(ctx context.Context, p *Poll, fixed []Proposal) error
	AppendProposal(ctx context.Context, pr *Proposal) error
	MarkActivated(ctx context.Context, proposalID int64) error
	Load(ctx context.Context) ([]Poll, []Proposal, error)
}
