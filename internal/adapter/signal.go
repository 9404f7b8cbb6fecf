package adapter

import (
	"context"
	"errors"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/reconcile"
	"github.com/dc-tec/seq-operator/internal/seq"
)

// Signal manages Seq signals.
type Signal struct{}

var _ reconcile.Adapter[seqv1alpha1.SignalConf, seqv1alpha1.SignalFind, seqv1alpha1.SignalInfo, seq.Signal] = Signal{}

func (Signal) Find(ctx context.Context, s reconcile.Scope, find *seqv1alpha1.SignalFind) (string, error) {
	if find.Title == "" {
		return "", nil
	}
	signals, err := s.Conn.ListSignals(ctx, find.OwnerID)
	if err != nil {
		return "", err
	}
	return findByTitle(signals, find.Title, func(sig *seq.Signal) (string, string) { return sig.ID, sig.Title }), nil
}

func (Signal) ValidateCreate(conf *seqv1alpha1.SignalConf) error {
	if conf.Title == nil || *conf.Title == "" {
		return errors.New("title is required to create a signal")
	}
	if conf.Grouping != nil && *conf.Grouping == seqv1alpha1.SignalGroupingExplicit &&
		(conf.ExplicitGroupName == nil || *conf.ExplicitGroupName == "") {
		return errors.New("explicitGroupName is required when grouping is explicit")
	}
	return nil
}

func (Signal) Create(ctx context.Context, s reconcile.Scope, conf *seqv1alpha1.SignalConf) (string, error) {
	doc, err := s.Conn.SignalTemplate(ctx)
	if err != nil {
		return "", err
	}
	if err := applySignalConf(doc, conf); err != nil {
		return "", err
	}
	created, err := s.Conn.CreateSignal(ctx, doc)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

func (Signal) Get(ctx context.Context, s reconcile.Scope, id string) (*seq.Signal, error) {
	return orNil(s.Conn.GetSignal(ctx, id))
}

func (Signal) Observe(remote *seq.Signal) (*seqv1alpha1.SignalInfo, error) {
	grouping, err := signalGroupings.declared(remote.Grouping)
	if err != nil {
		return nil, err
	}

	info := &seqv1alpha1.SignalInfo{
		Title:             remote.Title,
		Description:       remote.Description,
		OwnerID:           remote.OwnerID,
		Grouping:          grouping,
		ExplicitGroupName: remote.ExplicitGroupName,
		IsProtected:       remote.IsProtected,
	}
	for _, f := range remote.Filters {
		info.Filters = append(info.Filters, seqv1alpha1.SignalFilter{Filter: f.Filter, Description: f.Description})
	}
	for _, c := range remote.Columns {
		info.Columns = append(info.Columns, c.Expression)
	}
	return info, nil
}

func (Signal) Update(ctx context.Context, s reconcile.Scope, current *seq.Signal, conf *seqv1alpha1.SignalConf) (bool, error) {
	desired := *current
	if err := applySignalConf(&desired, conf); err != nil {
		return false, err
	}
	if !differs(ctx, current.ID, current, &desired) {
		return false, nil
	}
	if err := s.Conn.UpdateSignal(ctx, &desired); err != nil {
		return false, err
	}
	return true, nil
}

func (Signal) Delete(ctx context.Context, s reconcile.Scope, id string) error {
	return s.Conn.DeleteSignal(ctx, id)
}

func applySignalConf(doc *seq.Signal, conf *seqv1alpha1.SignalConf) error {
	set(&doc.Title, conf.Title)
	set(&doc.Description, conf.Description)
	set(&doc.OwnerID, conf.OwnerID)
	set(&doc.ExplicitGroupName, conf.ExplicitGroupName)
	set(&doc.IsProtected, conf.IsProtected)

	if conf.Grouping != nil {
		grouping, err := signalGroupings.remote(*conf.Grouping)
		if err != nil {
			return err
		}
		doc.Grouping = grouping
	}
	if conf.Filters != nil {
		filters := make([]seq.SignalFilter, 0, len(conf.Filters))
		for _, f := range conf.Filters {
			filters = append(filters, seq.SignalFilter{Filter: f.Filter, Description: f.Description})
		}
		doc.Filters = filters
	}
	if conf.Columns != nil {
		cols := make([]seq.SignalColumn, 0, len(conf.Columns))
		for _, c := range conf.Columns {
			cols = append(cols, seq.SignalColumn{Expression: c})
		}
		doc.Columns = cols
	}
	return nil
}
