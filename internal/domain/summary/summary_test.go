package summary_test

import (
	"errors"
	"testing"

	"github.com/okian/futebol/internal/domain/model"
	"github.com/okian/futebol/internal/domain/summary"
	"github.com/okian/futebol/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func ptr(s string) *string { return &s }

func goal(minute int, player, team string) model.Event {
	return model.Event{Minute: minute, Type: model.TypeShot, ShotOutcome: ptr("Goal"), Player: player, Team: team}
}

func card(minute int, kind, player, team string) model.Event {
	return model.Event{Minute: minute, Type: model.TypeCard, CardType: ptr(kind), Player: player, Team: team}
}

func TestRenderText(t *testing.T) {
	Convey("Given a goal and a card", t, func() {
		log := model.EventLog{
			goal(10, "X", "A"),
			card(44, "Yellow", "Y", "B"),
		}

		Convey("When rendering the digest", func() {
			text := summary.RenderText(log)

			Convey("Then each event is one line in minute order", func() {
				So(text, ShouldEqual, "10' - Gol: X (A)\n44' - Cartão Yellow: Y (B)\n")
			})
		})
	})

	Convey("Given a log without goals or cards", t, func() {
		log := model.EventLog{
			{Minute: 3, Type: model.TypePass, Player: "X", Team: "A"},
			{Minute: 5, Type: model.TypeShot, ShotOutcome: ptr("Saved"), Player: "X", Team: "A"},
		}

		Convey("Then the fixed no-events message is rendered", func() {
			So(summary.RenderText(log), ShouldEqual, summary.NoEventsMessage)
			So(summary.ImportantEvents(log), ShouldBeEmpty)
		})
	})
}

func TestImportantEvents(t *testing.T) {
	Convey("Given goals and cards out of chronological order", t, func() {
		log := model.EventLog{
			card(80, "Red", "C", "B"),
			goal(70, "X", "A"),
			card(12, "Yellow", "D", "A"),
			goal(12, "Z", "B"),
			goal(3, "X", "A"),
		}

		Convey("When extracting important events", func() {
			events := summary.ImportantEvents(log)

			Convey("Then they are sorted non-decreasing by minute", func() {
				So(len(events), ShouldEqual, 5)
				for i := 1; i < len(events); i++ {
					So(events[i].Minuto, ShouldBeGreaterThanOrEqualTo, events[i-1].Minuto)
				}
			})

			Convey("And ties keep goals before cards", func() {
				So(events[1], ShouldResemble, model.ImportantEvent{Minuto: 12, Tipo: "Gol", Jogador: "Z", Time: "B"})
				So(events[2], ShouldResemble, model.ImportantEvent{Minuto: 12, Tipo: "Cartão Yellow", Jogador: "D", Time: "A"})
			})
		})
	})
}

func TestBuild(t *testing.T) {
	Convey("Given a match where the away side scores twice", t, func() {
		log := model.EventLog{
			{Minute: 0, Type: "Starting XI", Team: "Alavés", Player: model.UnknownPlayer},
			{Minute: 0, Type: "Starting XI", Team: "Barcelona", Player: model.UnknownPlayer},
			goal(25, "Messi", "Barcelona"),
			card(40, "Yellow Card", "Pina", "Alavés"),
			goal(70, "Suárez", "Barcelona"),
			goal(85, "Ely", "Alavés"),
		}

		Convey("When building the summary", func() {
			s, err := summary.Build(log)

			Convey("Then sides follow order of first appearance", func() {
				So(err, ShouldBeNil)
				So(s.TimeCasa, ShouldEqual, "Alavés")
				So(s.TimeFora, ShouldEqual, "Barcelona")
			})

			Convey("And goals are counted per side", func() {
				So(s.GolsCasa, ShouldEqual, 1)
				So(s.GolsFora, ShouldEqual, 2)
			})

			Convey("And important events are listed chronologically", func() {
				So(len(s.EventosImportantes), ShouldEqual, 4)
				So(s.EventosImportantes[1].Tipo, ShouldEqual, "Cartão Yellow Card")
				So(s.Narracao, ShouldBeNil)
			})
		})
	})

	Convey("Given a log with a single team", t, func() {
		log := model.EventLog{goal(10, "X", "A")}

		Convey("When building the summary", func() {
			_, err := summary.Build(log)

			Convey("Then a validation error is returned", func() {
				So(errors.Is(err, types.ErrValidation), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "dados de partida incompletos")
			})
		})
	})

	Convey("Given a goalless match", t, func() {
		log := model.EventLog{
			{Minute: 1, Type: model.TypePass, Team: "A", Player: "X"},
			{Minute: 2, Type: model.TypePass, Team: "B", Player: "Y"},
		}

		Convey("Then the summary has an empty, non-nil event list", func() {
			s, err := summary.Build(log)
			So(err, ShouldBeNil)
			So(s.EventosImportantes, ShouldNotBeNil)
			So(s.EventosImportantes, ShouldBeEmpty)
			So(s.GolsCasa, ShouldEqual, 0)
			So(s.GolsFora, ShouldEqual, 0)
		})
	})
}
