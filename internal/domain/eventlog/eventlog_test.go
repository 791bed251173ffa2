package eventlog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/futebol/internal/domain/eventlog"
	"github.com/okian/futebol/internal/domain/model"
	"github.com/okian/futebol/internal/domain/types"
	"github.com/okian/futebol/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func ptr(s string) *string { return &s }

type stubProvider struct {
	records []eventlog.Record
	err     error
	calls   int
}

func (s *stubProvider) Events(_ context.Context, _ int) ([]eventlog.Record, error) {
	s.calls++
	return s.records, s.err
}

func TestAccessor_Fetch(t *testing.T) {
	Convey("Given a provider returning events with missing players", t, func() {
		p := &stubProvider{records: []eventlog.Record{
			{Index: 1, Minute: 0, Type: "Half Start", Team: "Barcelona"},
			{Index: 2, Minute: 1, Type: model.TypePass, Player: ptr("Piqué"), Team: "Barcelona"},
			{Index: 3, Minute: 2, Type: model.TypePass, Player: ptr(""), Team: "Alavés", PassOutcome: ptr("Out")},
		}}
		a := eventlog.New(p)

		Convey("When fetching the match", func() {
			log, err := a.Fetch(context.Background(), 303470)

			Convey("Then missing players are replaced by the sentinel", func() {
				So(err, ShouldBeNil)
				So(len(log), ShouldEqual, 3)
				So(log[0].Player, ShouldEqual, model.UnknownPlayer)
				So(log[1].Player, ShouldEqual, "Piqué")
				So(log[2].Player, ShouldEqual, model.UnknownPlayer)
			})

			Convey("And other attributes are carried over", func() {
				So(log[2].Team, ShouldEqual, "Alavés")
				So(*log[2].PassOutcome, ShouldEqual, "Out")
				So(log[1].Index, ShouldEqual, 2)
			})

			Convey("And the provider is called once", func() {
				So(p.calls, ShouldEqual, 1)
			})
		})
	})

	Convey("Given a provider that does not know the match", t, func() {
		a := eventlog.New(&stubProvider{err: types.WrapKind("statsbomb.events", types.ErrNotFound, errors.New("GET events/7.json: 404"))})

		Convey("Then fetch fails with not found", func() {
			_, err := a.Fetch(context.Background(), 1)
			So(errors.Is(err, types.ErrNotFound), ShouldBeTrue)
		})
	})

	Convey("Given a provider returning no rows", t, func() {
		a := eventlog.New(&stubProvider{records: []eventlog.Record{}})

		Convey("Then fetch fails with not found", func() {
			_, err := a.Fetch(context.Background(), 1)
			So(errors.Is(err, types.ErrNotFound), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "sem eventos")
		})
	})

	Convey("Given a failing provider", t, func() {
		cause := errors.New("connection reset")
		a := eventlog.New(&stubProvider{err: cause})

		Convey("Then fetch fails with unavailable and keeps the cause", func() {
			_, err := a.Fetch(context.Background(), 1)
			So(errors.Is(err, types.ErrUnavailable), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
		})
	})
}
