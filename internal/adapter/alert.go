package adapter

import (
	"context"
	"errors"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/reconcile"
	"github.com/dc-tec/seq-operator/internal/seq"
)

// Alert manages Seq alerts.
type Alert struct{}

var _ reconcile.Adapter[seqv1alpha1.AlertConf, seqv1alpha1.AlertFind, seqv1alpha1.AlertInfo, seq.Alert] = Alert{}

func (Alert) Find(ctx context.Context, s reconcile.Scope, find *seqv1alpha1.AlertFind) (string, error) {
	if find.Title == "" {
		return "", nil
	}
	alerts, err := s.Conn.ListAlerts(ctx, find.OwnerID)
	if err != nil {
		return "", err
	}
	return findByTitle(alerts, find.Title, func(a *seq.Alert) (string, string) { return a.ID, a.Title }), nil
}

func (Alert) ValidateCreate(conf *seqv1alpha1.AlertConf) error {
	if conf.Title == nil || *conf.Title == "" {
		return errors.New("title is required to create an alert")
	}
	return nil
}

func (Alert) Create(ctx context.Context, s reconcile.Scope, conf *seqv1alpha1.AlertConf) (string, error) {
	doc, err := s.Conn.AlertTemplate(ctx)
	if err != nil {
		return "", err
	}
	if err := applyAlertConf(doc, conf); err != nil {
		return "", err
	}
	created, err := s.Conn.CreateAlert(ctx, doc)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func (Alert) Get(ctx context.Context, s reconcile.Scope, id string) (*seq.Alert, error) {
	return orNil(s.Conn.GetAlert(ctx, id))
}

func (Alert) Observe(remote *seq.Alert) (*seqv1alpha1.AlertInfo, error) {
	level, err := logLevels.declared(remote.NotificationLevel)
	if err != nil {
		return nil, err
	}

	info := &seqv1alpha1.AlertInfo{
		Title:             remote.Title,
		Description:       remote.Description,
		OwnerID:           remote.OwnerID,
		Where:             remote.Where,
		TimeGrouping:      remote.TimeGrouping,
		Having:            remote.Having,
		NotificationLevel: level,
		SuppressionTime:   remote.SuppressionTime,
		IsDisabled:        remote.IsDisabled,
	}
	for _, c := range remote.Select {
		info.Select = append(info.Select, seqv1alpha1.AlertColumn{Label: c.Label, Value: c.Value})
	}
	for _, g := range remote.GroupBy {
		info.GroupBy = append(info.GroupBy, g.Value)
	}
	for _, ch := range remote.NotificationChannels {
		info.NotificationChannels = append(info.NotificationChannels, ch.NotificationAppInstanceID)
	}
	return info, nil
}

func (Alert) Update(ctx context.Context, s reconcile.Scope, current *seq.Alert, conf *seqv1alpha1.AlertConf) (bool, error) {
	desired := *current
	if err := applyAlertConf(&desired, conf); err != nil {
		return false, err
	}
	if !differs(ctx, current.ID, current, &desired) {
		return false, nil
	}
	if err := s.Conn.UpdateAlert(ctx, &desired); err != nil {
		return false, err
	}
	return true, nil
}

func (Alert) Delete(ctx context.Context, s reconcile.Scope, id string) error {
	return s.Conn.DeleteAlert(ctx, id)
}

// applyAlertConf replaces slices rather than mutating them, so doc may share
// backing arrays with another document.
func applyAlertConf(doc *seq.Alert, conf *seqv1alpha1.AlertConf) error {
	set(&doc.Title, conf.Title)
	set(&doc.Description, conf.Description)
	set(&doc.OwnerID, conf.OwnerID)
	set(&doc.Where, conf.Where)
	set(&doc.TimeGrouping, conf.TimeGrouping)
	set(&doc.Having, conf.Having)
	set(&doc.SuppressionTime, conf.SuppressionTime)
	set(&doc.IsDisabled, conf.IsDisabled)

	if conf.NotificationLevel != nil {
		level, err := logLevels.remote(*conf.NotificationLevel)
		if err != nil {
			return err
		}
		doc.NotificationLevel = level
	}
	if conf.Select != nil {
		cols := make([]seq.AlertColumn, 0, len(conf.Select))
		for _, c := range conf.Select {
			cols = append(cols, seq.AlertColumn{Label: c.Label, Value: c.Value})
		}
		doc.Select = cols
	}
	if conf.GroupBy != nil {
		groups := make([]seq.GroupingColumn, 0, len(conf.GroupBy))
		for _, g := range conf.GroupBy {
			groups = append(groups, seq.GroupingColumn{Value: g})
		}
		doc.GroupBy = groups
	}
	if conf.NotificationChannels != nil {
		channels := make([]seq.NotificationChannel, 0, len(conf.NotificationChannels))
		for _, id := range conf.NotificationChannels {
			channels = append(channels, seq.NotificationChannel{NotificationAppInstanceID: id})
		}
		doc.NotificationChannels = channels
	}
	return nil
}
