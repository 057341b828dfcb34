package poll

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Registry holds every poll and proposal. A single mutex serializes all
// operations so each one is all-or-nothing with respect to the others.
type Registry struct {
	mu        sync.Mutex
	polls     []*Poll
	proposals []*Proposal
	journal   Journal
	now       func() time.Time
}

// NewRegistry returns an empty registry. journal may be nil, in which case
// state lives only in memory.
func NewRegistry(journal Journal) *Registry {
	return &Registry{
		journal: journal,
		now:     time.Now,
	}
}

// Restore replaces the registry state with the journal contents.
func (r *Registry) Restore(ctx context.Context) error {
	if r.journal == nil {
		return nil
	}
	polls, proposals, err := r.journal.Load(ctx)
	if err != nil {
		return err
	}

	ps := make([]*Poll, len(polls))
	for i := range polls {
		if polls[i].ID != int64(i) {
			return fmt.Errorf("%w: poll %d at position %d", ErrCorruptJournal, polls[i].ID, i)
		}
		p := polls[i]
		p.ProposalIDs = []int64{}
		ps[i] = &p
	}
	prs := make([]*Proposal, len(proposals))
	for i := range proposals {
		pr := proposals[i]
		if pr.ID != int64(i) {
			return fmt.Errorf("%w: proposal %d at position %d", ErrCorruptJournal, pr.ID, i)
		}
		if pr.PollID < 0 || pr.PollID >= int64(len(ps)) {
			return fmt.Errorf("%w: proposal %d references poll %d", ErrCorruptJournal, pr.ID, pr.PollID)
		}
		ps[pr.PollID].ProposalIDs = append(ps[pr.PollID].ProposalIDs, pr.ID)
		prs[i] = &pr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.polls = ps
	r.proposals = prs
	return nil
}

func (r *Registry) CreatePoll(ctx context.Context, in CreatePollInput, caller int64) (int64, error) {
	if in.EndDate < in.StartDate {
		return 0, ErrInvalidDateRange
	}
	if len(in.Fixed) > 0 && !in.IsStandard {
		return 0, ErrInvalidFixedProposals
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := &Poll{
		ID:           int64(len(r.polls)),
		Name:         in.Name,
		Description:  in.Description,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		VotingChoice: in.VotingChoice,
		IsStandard:   in.IsStandard,
		Owner:        caller,
		ProposalIDs:  make([]int64, 0, len(in.Fixed)),
	}

	fixed := make([]Proposal, len(in.Fixed))
	next := int64(len(r.proposals))
	for i, f := range in.Fixed {
		fixed[i] = Proposal{
			ID:          next + int64(i),
			Name:        f.Name,
			Description: f.Description,
			Author:      caller,
			PollID:      p.ID,
			Activated:   true,
		}
		p.ProposalIDs = append(p.ProposalIDs, fixed[i].ID)
	}

	if r.journal != nil {
		if err := r.journal.AppendPoll(ctx, p, fixed); err != nil {
			return 0, err
		}
	}

	r.polls = append(r.polls, p)
	for i := range fixed {
		r.proposals = append(r.proposals, &fixed[i])
	}
	return p.ID, nil
}

// GetPoll returns a snapshot of the poll; callers may not mutate registry
// state through it.
func (r *Registry) GetPoll(id int64) (Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, err := r.pollLocked(id)
	if err != nil {
		return Poll{}, err
	}
	return p.clone(), nil
}

func (r *Registry) PollAmount() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.polls))
}

func (r *Registry) ListPolls() []Poll {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]Poll, len(r.polls))
	for i, p := range r.polls {
		res[i] = p.clone()
	}
	return res
}

// CreateProposal submits a proposal to a non-standard, still active poll.
// Proposals created by the poll owner start out activated.
func (r *Registry) CreateProposal(ctx context.Context, name, description string, pollID, caller int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.pollLocked(pollID)
	if err != nil {
		return 0, err
	}
	if p.IsStandard {
		return 0, ErrStandardPoll
	}
	if !p.ActiveAt(r.now().Unix()) {
		return 0, ErrPollInactive
	}

	pr := &Proposal{
		ID:          int64(len(r.proposals)),
		Name:        name,
		Description: description,
		Author:      caller,
		PollID:      pollID,
		Activated:   caller == p.Owner,
	}

	if r.journal != nil {
		if err := r.journal.AppendProposal(ctx, pr); err != nil {
			return 0, err
		}
	}

	r.proposals = append(r.proposals, pr)
	p.ProposalIDs = append(p.ProposalIDs, pr.ID)
	return pr.ID, nil
}

func (r *Registry) GetProposal(id int64) (Proposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pr, err := r.proposalLocked(id)
	if err != nil {
		return Proposal{}, err
	}
	return *pr, nil
}

func (r *Registry) ProposalsFromPoll(pollID int64) ([]int64, error) {
	p, err := r.GetPoll(pollID)
	if err != nil {
		return nil, err
	}
	return p.ProposalIDs, nil
}

// ActivateProposal flips a proposal to activated. Only the owner of the
// poll the proposal belongs to may do so, once, while the poll is active.
func (r *Registry) ActivateProposal(ctx context.Context, proposalID, pollID, caller int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pr, err := r.proposalLocked(proposalID)
	if err != nil {
		return err
	}
	if pr.PollID != pollID {
		return ErrProposalNotInPoll
	}
	p, err := r.pollLocked(pollID)
	if err != nil {
		return err
	}
	if p.Owner != caller {
		return ErrNotPollOwner
	}
	if pr.Activated {
		return ErrAlreadyActivated
	}
	if !p.ActiveAt(r.now().Unix()) {
		return ErrPollInactive
	}

	if r.journal != nil {
		if err := r.journal.MarkActivated(ctx, pr.ID); err != nil {
			return err
		}
	}
	pr.Activated = true
	return nil
}

func (r *Registry) pollLocked(id int64) (*Poll, error) {
	if id < 0 || id >= int64(len(r.polls)) {
		return nil, ErrPollNotFound
	}
	return r.polls[id], nil
}

func (r *Registry) proposalLocked(id int64) (*Proposal, error) {
	if id < 0 || id >= int64(len(r.proposals)) {
		return nil, ErrProposalNotFound
	}
	return r.proposals[id], nil
}
