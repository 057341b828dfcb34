package poll

import "errors"

// Messages are part of the caller-visible contract and are kept verbatim.
var (
	ErrInvalidDateRange      = errors.New("The enddate must be larger then the startdate")
	ErrInvalidFixedProposals = errors.New("fixed proposals are only allowed on standard polls")
	ErrPollNotFound          = errors.New("poll not found")
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrStandardPoll          = errors.New("You can not add proposals to standard polls!")
	ErrPollInactive          = errors.New("This poll is not active anymore!")
	ErrProposalNotInPoll     = errors.New("This proposal is not part of that poll!")
	ErrNotPollOwner          = errors.New("You are not the poll owner")
	ErrAlreadyActivated      = errors.New("Proposal is already activated!")
	ErrCorruptJournal        = errors.New("journal ids are not dense")
)
