package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/order-intake/internal/config"
	"github.com/SergeyBogomolovv/order-intake/internal/entities"
	"github.com/SergeyBogomolovv/order-intake/pkg/utils"

	"github.com/go-resty/resty/v2"
)

const (
	recordsPath = "/tables/{table}/records"
	recordPath  = "/tables/{table}/records/{row_id}"
	tokenHeader = "xc-token"
)

var (
	errNoRows           = errors.New("no rows")
	errUnexpectedStatus = errors.New("unexpected status")
	errTransport        = errors.New("transport failure")
)

// RowIDCache remembers which store row holds a business key.
type RowIDCache interface {
	Get(key string) (string, bool)
	Set(key string, value string)
	Delete(key string)
}

type recordStore struct {
	logger *slog.Logger
	client *resty.Client
	cfg    config.RecordStore
	rowIDs RowIDCache
}

func NewRecordStore(logger *slog.Logger, cfg config.RecordStore, rowIDs RowIDCache) *recordStore {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader(tokenHeader, cfg.Token).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout)

	return &recordStore{
		logger: logger.With(slog.String("repo", "record_store")),
		client: client,
		cfg:    cfg,
		rowIDs: rowIDs,
	}
}

func (s *recordStore) Create(ctx context.Context, order entities.Order) error {
	if err := s.checkConfigured("create"); err != nil {
		return err
	}

	resp, err := s.request(ctx).SetBody(OrderToPayload(order)).Post(recordsPath)
	if err != nil {
		return s.fail("create", fmt.Errorf("%w: create order %s: %w", entities.ErrStoreUnavailable, order.OrderID, err))
	}
	if !resp.IsSuccess() {
		s.logger.WarnContext(ctx, "record store rejected order",
			slog.String("order_id", order.OrderID),
			slog.Int("status", resp.StatusCode()),
			slog.String("body", resp.String()),
		)
		return s.fail("create", fmt.Errorf("%w: create order %s: status %d", entities.ErrStoreUnavailable, order.OrderID, resp.StatusCode()))
	}

	var created createResponse
	if err := json.Unmarshal(resp.Body(), &created); err == nil && created.RowID != "" {
		s.rowIDs.Set(order.OrderID, string(created.RowID))
	}

	observe("create", outcomeOK)
	s.logger.DebugContext(ctx, "order persisted", slog.String("order_id", order.OrderID))
	return nil
}

// FindByOrderID looks the row up by business key. The store parses filter values
// inconsistently, so an unquoted filter is tried first and a quoted one second.
func (s *recordStore) FindByOrderID(ctx context.Context, orderID string) (Row, error) {
	if err := s.checkConfigured("find"); err != nil {
		return Row{}, err
	}

	var row Row
	find := func(filter string) func() error {
		return func() error {
			found, err := s.findOne(ctx, filter)
			if err != nil {
				s.logger.DebugContext(ctx, "lookup attempt failed",
					slog.String("filter", filter), slog.Any("error", err))
				return err
			}
			row = found
			return nil
		}
	}

	err := utils.Fallback(
		find(unquotedFilter(orderID)),
		find(quotedFilter(orderID)),
		// нечитаемое тело при 2xx повторным запросом не лечится
		utils.On(errNoRows, errUnexpectedStatus, errTransport),
	)
	switch {
	case err == nil:
		if row.RowID != "" {
			s.rowIDs.Set(orderID, string(row.RowID))
		}
		observe("find", outcomeOK)
		return row, nil
	case errors.Is(err, errNoRows):
		observe("find", outcomeNotFound)
		return Row{}, fmt.Errorf("find %s: %w", orderID, entities.ErrOrderNotFound)
	default:
		return Row{}, s.fail("find", fmt.Errorf("%w: find %s: %w", entities.ErrStoreUnavailable, orderID, err))
	}
}

func (s *recordStore) Get(ctx context.Context, orderID string) (entities.Order, error) {
	row, err := s.FindByOrderID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	return RowToEntity(row), nil
}

// List returns up to limit orders, newest first.
func (s *recordStore) List(ctx context.Context, limit int) ([]entities.Order, error) {
	if err := s.checkConfigured("list"); err != nil {
		return nil, err
	}

	resp, err := s.request(ctx).
		SetQueryParams(map[string]string{
			"sort":  "-" + fieldCreatedAt,
			"limit": strconv.Itoa(limit),
		}).
		Get(recordsPath)
	if err != nil {
		return nil, s.fail("list", fmt.Errorf("%w: list orders: %w", entities.ErrStoreUnavailable, err))
	}
	if !resp.IsSuccess() {
		return nil, s.fail("list", fmt.Errorf("%w: list orders: status %d", entities.ErrStoreUnavailable, resp.StatusCode()))
	}

	var out listResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, s.fail("list", fmt.Errorf("%w: decode orders: %w", entities.ErrStoreUnavailable, err))
	}

	orders := make([]entities.Order, 0, len(out.List))
	for _, row := range out.List {
		if row.OrderID != "" && row.RowID != "" {
			s.rowIDs.Set(row.OrderID, string(row.RowID))
		}
		orders = append(orders, RowToEntity(row))
	}

	slices.SortStableFunc(orders, func(a, b entities.Order) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}

	observe("list", outcomeOK)
	return orders, nil
}

// UpdateStatus patches the row directly and, if the store does not answer with
// a recognised success code, repeats the change through the batch endpoint.
func (s *recordStore) UpdateStatus(ctx context.Context, orderID, status string) error {
	if err := s.checkConfigured("update_status"); err != nil {
		return err
	}

	rowID, err := s.resolveRowID(ctx, orderID)
	if err != nil {
		observe("update_status", outcomeFor(err))
		return fmt.Errorf("update status of %s: %w", orderID, err)
	}

	fields := map[string]any{fieldStatus: status}
	err = utils.Fallback(
		func() error { return s.patchRow(ctx, rowID, fields) },
		func() error { return s.patchBatch(ctx, rowID, fields) },
		utils.Always,
	)
	if err != nil {
		s.rowIDs.Delete(orderID)
		return s.fail("update_status", fmt.Errorf("%w: update status of %s: %w", entities.ErrUpdateRejected, orderID, err))
	}

	observe("update_status", outcomeOK)
	s.logger.InfoContext(ctx, "order status updated", slog.String("order_id", orderID), slog.String("status", status))
	return nil
}

func (s *recordStore) UpdateEmailFlag(ctx context.Context, orderID string, sent bool) error {
	if err := s.checkConfigured("update_email_flag"); err != nil {
		return err
	}

	rowID, err := s.resolveRowID(ctx, orderID)
	if err != nil {
		observe("update_email_flag", outcomeFor(err))
		return fmt.Errorf("update email flag of %s: %w", orderID, err)
	}

	if err := s.patchRow(ctx, rowID, map[string]any{fieldEmailSent: sent}); err != nil {
		s.rowIDs.Delete(orderID)
		return s.fail("update_email_flag", fmt.Errorf("%w: update email flag of %s: %w", entities.ErrUpdateRejected, orderID, err))
	}

	observe("update_email_flag", outcomeOK)
	return nil
}

// resolveRowID maps a business key to the store row id. Without a cached id it
// waits the settle delay first, a just-created row may not be visible yet.
func (s *recordStore) resolveRowID(ctx context.Context, orderID string) (RowID, error) {
	if id, ok := s.rowIDs.Get(orderID); ok {
		return RowID(id), nil
	}

	if err := s.settle(ctx); err != nil {
		return "", err
	}

	row, err := s.FindByOrderID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if row.RowID == "" {
		return "", fmt.Errorf("%w: row for %s has no %s", entities.ErrStoreUnavailable, orderID, fieldRowID)
	}
	return row.RowID, nil
}

func (s *recordStore) settle(ctx context.Context) error {
	if s.cfg.SettleDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.cfg.SettleDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *recordStore) findOne(ctx context.Context, filter string) (Row, error) {
	resp, err := s.request(ctx).
		SetQueryParams(map[string]string{
			"where": filter,
			"limit": "1",
		}).
		Get(recordsPath)
	if err != nil {
		return Row{}, fmt.Errorf("%w: %w", errTransport, err)
	}
	if !resp.IsSuccess() {
		return Row{}, fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode())
	}

	var out listResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return Row{}, fmt.Errorf("decode rows: %w", err)
	}
	if len(out.List) == 0 {
		return Row{}, errNoRows
	}
	return out.List[0], nil
}

func (s *recordStore) patchRow(ctx context.Context, rowID RowID, fields map[string]any) error {
	resp, err := s.request(ctx).
		SetPathParam("row_id", string(rowID)).
		SetBody(fields).
		Patch(recordPath)
	if err != nil {
		return err
	}
	if !isRecognisedSuccess(resp.StatusCode()) {
		return fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode())
	}
	return nil
}

func (s *recordStore) patchBatch(ctx context.Context, rowID RowID, fields map[string]any) error {
	record := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		record[k] = v
	}
	record[fieldRowID] = rowID

	resp, err := s.request(ctx).SetBody([]map[string]any{record}).Patch(recordsPath)
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode())
	}
	return nil
}

func (s *recordStore) request(ctx context.Context) *resty.Request {
	return s.client.R().
		SetContext(ctx).
		SetPathParam("table", s.cfg.TableID)
}

func (s *recordStore) checkConfigured(op string) error {
	if s.cfg.Configured() {
		return nil
	}
	observe(op, outcomeNotConfigured)
	s.logger.Error("record store credentials are missing", slog.String("operation", op))
	return entities.ErrStoreNotConfigured
}

func (s *recordStore) fail(op string, err error) error {
	observe(op, outcomeFor(err))
	s.logger.Error("record store operation failed", slog.String("operation", op), slog.Any("error", err))
	return err
}

func isRecognisedSuccess(code int) bool {
	switch code {
	case 200, 201, 204:
		return true
	}
	return false
}

func unquotedFilter(orderID string) string {
	return fmt.Sprintf("(%s,eq,%s)", fieldOrderID, orderID)
}

func quotedFilter(orderID string) string {
	return fmt.Sprintf(`(%s,eq,"%s")`, fieldOrderID, orderID)
}
