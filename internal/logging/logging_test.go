package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestInitWriter(t *testing.T) {
	Convey("Given a JSON logger at warn level", t, func() {
		var buf bytes.Buffer
		logger := InitWriter(&buf, "warn", "json")

		Convey("Info lines are dropped", func() {
			logger.Info("quiet")
			So(buf.Len(), ShouldEqual, 0)
		})

		Convey("Warn lines are written as JSON", func() {
			logger.Warn("loud", "staff_id", 7)
			var line map[string]any
			So(json.Unmarshal(buf.Bytes(), &line), ShouldBeNil)
			So(line["msg"], ShouldEqual, "loud")
			So(line["staff_id"], ShouldEqual, 7.0)
		})
	})
}

func TestParseLevel(t *testing.T) {
	Convey("Levels parse case-insensitively", t, func() {
		So(ParseLevel("DEBUG"), ShouldEqual, slog.LevelDebug)
		So(ParseLevel("warning"), ShouldEqual, slog.LevelWarn)
		So(ParseLevel("error"), ShouldEqual, slog.LevelError)
		So(ParseLevel(""), ShouldEqual, slog.LevelInfo)
	})
}
