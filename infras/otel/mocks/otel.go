// Package mocks provides a tracer that opens no spans, for tests.
package mocks

import (
	"context"

	"tavola/infras/otel"
)

type discard struct{}

func NewOtel() otel.Otel { return discard{} }

func NewScope() otel.Scope { return discard{} }

func (discard) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, discard{}
}

func (discard) End() {}
func (discard) AddEvent(string) {}
func (discard) TraceError(error) {}
func (discard) TraceIfError(error) {}
func (discard) SetAttribute(string, any) {}
func (discard) SetAttributes(map[string]any) {}
