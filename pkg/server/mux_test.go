package server_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/dburkart/abacus/pkg/proto"
	"github.com/dburkart/abacus/pkg/server"
)

func stub(rw io.Writer, msg proto.Message) {

}

func TestMuxDispatch(t *testing.T) {
	tt := []struct {
		test string
		mux  server.MessageMux
	}{
		{"MapMux", server.NewMapMux()},
		{"SliceMux", server.NewSliceMux()},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			tc.mux.Handle(proto.CommandEval, func(w io.Writer, msg proto.Message) {
				rw := proto.NewResponseWriter(w)
				rw.WriteMessage(proto.NewMessageWithType(proto.CommandResult, proto.ResultResponse{Code: 200, Value: 5}))
			})

			buf := new(bytes.Buffer)
			tc.mux.ServeMessage(buf, proto.NewMessage(proto.CommandEval, []byte("2+3")))

			msg, err := proto.ReadMessage(buf)
			if err != nil {
				t.Fatal("wanted a response message, got", err)
			}
			if msg.Command != proto.CommandResult {
				t.Error("wanted a RES response, got", msg.Command)
			}
		})
	}
}

func TestMuxUnknownCommand(t *testing.T) {
	tt := []struct {
		test string
		mux  server.MessageMux
	}{
		{"MapMux", server.NewMapMux()},
		{"SliceMux", server.NewSliceMux()},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			tc.mux.Handle(proto.CommandEval, stub)

			buf := new(bytes.Buffer)
			tc.mux.ServeMessage(buf, proto.NewMessage(proto.CommandStats, nil))

			msg, err := proto.ReadMessage(buf)
			if err != nil {
				t.Fatal("wanted an error response, got", err)
			}
			if msg.Command != proto.CommandError {
				t.Error("wanted an ERR response, got", msg.Command)
			}

			response := proto.ErrResponse{}
			if err := proto.Unmarshal(msg.Data, &response); err != nil {
				t.Fatal(err)
			}
			if response.Code != 505 {
				t.Error("wanted code 505, got", response.Code)
			}
		})
	}
}

func BenchmarkMapCommandParse(b *testing.B) {
	mux := server.NewMapMux()

	mux.Handle("EVAL", stub)
	mux.Handle("VERSION", stub)
	mux.Handle("STATS", stub)

	tests := []proto.Message{{
		Command: "EVAL",
	}, {
		Command: "VERSION",
	}, {
		Command: "STATS",
	},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		testMsg := tests[i%len(tests)]
		mux.ServeMessage(io.Discard, testMsg)
	}
}

func BenchmarkSliceCommandParse(b *testing.B) {
	mux := server.NewSliceMux()
	mux.Handle("EVAL", stub)
	mux.Handle("VERSION", stub)
	mux.Handle("STATS", stub)

	tests := []proto.Message{{
		Command: "EVAL",
	}, {
		Command: "VERSION",
	}, {
		Command: "STATS",
	},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		testMsg := tests[i%len(tests)]
		mux.ServeMessage(io.Discard, testMsg)
	}
}

func BenchmarkSwitchCommandParse(b *testing.B) {
	mux := func(msg proto.Message) {
		switch msg.Command {
		case "EVAL":
			stub(io.Discard, msg)
		case "VERSION":
			stub(io.Discard, msg)
		case "STATS":
			stub(io.Discard, msg)
		}
	}

	tests := []proto.Message{{
		Command: "EVAL",
	}, {
		Command: "VERSION",
	}, {
		Command: "STATS",
	},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		testMsg := tests[i%len(tests)]
		mux(testMsg)
	}
}
