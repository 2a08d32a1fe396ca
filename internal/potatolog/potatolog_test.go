package potatolog_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ja-he/chordbind/internal/potatolog"
)

func TestMemoryLog(t *testing.T) {

	t.Run("zerolog entries", func(t *testing.T) {
		mem := potatolog.NewMemoryLog(0)
		logger := zerolog.New(mem)
		logger.Warn().Str("name", "jump").Msg("hello")

		entries := mem.Get()
		if len(entries) != 1 {
			t.Fatal("expected one entry, got", len(entries))
		}
		if entries[0]["level"] != "warn" || entries[0]["name"] != "jump" || entries[0]["message"] != "hello" {
			t.Error("unexpected entry", entries[0])
		}
	})

	t.Run("capacity", func(t *testing.T) {
		mem := potatolog.NewMemoryLog(2)
		logger := zerolog.New(mem)
		logger.Info().Msg("a")
		logger.Info().Msg("b")
		logger.Info().Msg("c")

		entries := mem.Get()
		if len(entries) != 2 {
			t.Fatal("expected two entries, got", len(entries))
		}
		if entries[0]["message"] != "b" || entries[1]["message"] != "c" {
			t.Error("expected oldest entry dropped, got", entries)
		}
	})

	t.Run("tail", func(t *testing.T) {
		mem := potatolog.NewMemoryLog(0)
		logger := zerolog.New(mem)
		logger.Info().Msg("a")
		logger.Info().Msg("b")

		tail := mem.Tail(1)
		if len(tail) != 1 || tail[0]["message"] != "b" {
			t.Error("unexpected tail", tail)
		}
		if len(mem.Tail(5)) != 2 {
			t.Error("tail longer than log should return whole log")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		mem := potatolog.NewMemoryLog(0)
		_, err := mem.Write([]byte("not json"))
		if err == nil {
			t.Error("expected error on non-json input")
		}
	})
}
