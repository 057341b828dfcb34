package api

import (
	"encoding/json"
	"net/http"

	"voting-poll/internal/domain/poll"
	"voting-poll/internal/platform/apperr"
	"voting-poll/internal/worker"
)

type createPollRequest struct {
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	StartDate    int64                `json:"start_date"`
	EndDate      int64                `json:"end_date"`
	VotingChoice int64                `json:"voting_choice"`
	IsStandard   bool                 `json:"is_standard"`
	Proposals    []poll.FixedProposal `json:"proposals,omitempty"`
}

type pollProposalsResponse struct {
	PollID      int64   `json:"poll_id"`
	ProposalIDs []int64 `json:"proposal_ids"`
}

// @Summary     Create a poll
// @Description The caller becomes the poll owner. Standard polls may carry a fixed proposal set.
// @Tags        polls
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       request  body      createPollRequest  true  "Poll"
// @Success     201      {object}  map[string]int64
// @Failure     400      {object}  map[string]string  "invalid body or date range"
// @Failure     401      {object}  map[string]string  "unauthorized"
// @Router      /api/v1/polls [post]
func (h *Handler) handleCreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	caller := callerFromCtx(r)
	id, err := h.registry.CreatePoll(r.Context(), poll.CreatePollInput{
		Name:         req.Name,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		VotingChoice: poll.VotingChoice(req.VotingChoice),
		IsStandard:   req.IsStandard,
		Fixed:        req.Proposals,
	}, caller)
	if err != nil {
		errorResponse(w, err)
		return
	}

	worker.Publish(h.events, worker.Event{Kind: worker.PollCreated, PollID: id, Caller: caller})
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// @Summary     List polls
// @Tags        polls
// @Produce     json
// @Success     200  {array}  poll.Poll
// @Router      /api/v1/polls [get]
func (h *Handler) handleListPolls(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.ListPolls())
}

// @Summary     Number of polls
// @Tags        polls
// @Produce     json
// @Success     200  {object}  map[string]int64
// @Router      /api/v1/polls/count [get]
func (h *Handler) handlePollAmount(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int64{"amount": h.registry.PollAmount()})
}

// @Summary     Get a poll
// @Tags        polls
// @Produce     json
// @Param       id   path      int64  true  "Poll ID"
// @Success     200  {object}  poll.Poll
// @Failure     404  {object}  map[string]string  "poll not found"
// @Router      /api/v1/polls/{id} [get]
func (h *Handler) handleGetPoll(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid poll id", err))
		return
	}

	p, err := h.registry.GetPoll(id)
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// @Summary     Proposal ids of a poll
// @Tags        polls
// @Produce     json
// @Param       id   path      int64  true  "Poll ID"
// @Success     200  {object}  pollProposalsResponse
// @Failure     404  {object}  map[string]string  "poll not found"
// @Router      /api/v1/polls/{id}/proposals [get]
func (h *Handler) handleProposalsFromPoll(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid poll id", err))
		return
	}

	ids, err := h.registry.ProposalsFromPoll(id)
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pollProposalsResponse{PollID: id, ProposalIDs: ids})
}
