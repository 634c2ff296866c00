package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/avoidance-tictactoe/internal/entity"
)

const tallyKey = "results:tally"

var ErrResultNotFound = errors.New("result not found")

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	Tally(ctx context.Context) (map[string]int, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save stores the result and counts it in the tally in one transaction.
func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKey(result.ID), resultJSON, 0)
		pipe.HIncrBy(ctx, tallyKey, result.TallyField(), 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by ID: %w", err)
	}

	var result entity.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// Tally returns how many archived games each player won and how many were tied.
func (that *dbResult) Tally(ctx context.Context) (map[string]int, error) {
	response, err := that.client.HGetAll(ctx, tallyKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get results tally: %w", err)
	}

	tally := map[string]int{
		entity.TallyFirstPlayer:  0,
		entity.TallySecondPlayer: 0,
		entity.TallyTie:          0,
	}

	for field, value := range response {
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid tally value for %s: %w", field, err)
		}
		tally[field] = count
	}

	return tally, nil
}

func resultKey(id string) string {
	return "result:" + id
}
