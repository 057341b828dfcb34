package sqlrepo

import (
	"context"
	"database/sql"

	"voting-poll/internal/domain/poll"
)

// PollJournal stores registry mutations in polls/proposals tables. Ids are
// assigned by the registry, not by the database.
type PollJournal struct {
	db *sql.DB
}

func NewPollJournal(db *sql.DB) *PollJournal {
	return &PollJournal{db: db}
}

const insertProposal = `
        INSERT INTO proposals (id, poll_id, name, description, author_id, activated)
        VALUES ($1, $2, $3, $4, $5, $6)
    `

func (j *PollJournal) AppendPoll(ctx context.Context, p *poll.Poll, fixed []poll.Proposal) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO polls (id, name, description, start_date, end_date, voting_choice, is_standard, owner_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, p.ID, p.Name, p.Description, p.StartDate, p.EndDate, int64(p.VotingChoice), p.IsStandard, p.Owner)
	if err != nil {
		return err
	}

	for _, pr := range fixed {
		if _, err := tx.ExecContext(ctx, insertProposal,
			pr.ID, pr.PollID, pr.Name, pr.Description, pr.Author, pr.Activated); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (j *PollJournal) AppendProposal(ctx context.Context, pr *poll.Proposal) error {
	_, err := j.db.ExecContext(ctx, insertProposal,
		pr.ID, pr.PollID, pr.Name, pr.Description, pr.Author, pr.Activated)
	return err
}

func (j *PollJournal) MarkActivated(ctx context.Context, proposalID int64) error {
	res, err := j.db.ExecContext(ctx, `UPDATE proposals SET activated = $1 WHERE id = $2`, true, proposalID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (j *PollJournal) Load(ctx context.Context) ([]poll.Poll, []poll.Proposal, error) {
	rows, err := j.db.QueryContext(ctx, `
        SELECT id, name, description, start_date, end_date, voting_choice, is_standard, owner_id
        FROM polls ORDER BY id
    `)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var polls []poll.Poll
	for rows.Next() {
		var p poll.Poll
		var choice int64
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate,
			&choice, &p.IsStandard, &p.Owner); err != nil {
			return nil, nil, err
		}
		p.VotingChoice = poll.VotingChoice(choice)
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	prRows, err := j.db.QueryContext(ctx, `
        SELECT id, poll_id, name, description, author_id, activated
        FROM proposals ORDER BY id
    `)
	if err != nil {
		return nil, nil, err
	}
	defer prRows.Close()

	var proposals []poll.Proposal
	for prRows.Next() {
		var pr poll.Proposal
		if err := prRows.Scan(&pr.ID, &pr.PollID, &pr.Name, &pr.Description, &pr.Author, &pr.Activated); err != nil {
			return nil, nil, err
		}
		proposals = append(proposals, pr)
	}
	return polls, proposals, prRows.Err()
}
