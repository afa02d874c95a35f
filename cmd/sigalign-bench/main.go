// Command sigalign-bench aligns a synthetic query against a synthetic
// target repeatedly under a CPU or memory profiler, for benchmarking
// the engine outside of any particular PatternLocator/SequenceStorage
// implementation.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/pkg/profile"

	"github.com/sigalign-go/sigalign"
)

func main() {
	profileMode := flag.String("p", "", "profile mode: cpu, mem, or empty to disable")
	targetLen := flag.Int("t", 100_000, "target length")
	queryLen := flag.Int("q", 150, "query length")
	mutateEvery := flag.Int("mut", 20, "mutate roughly one base every N")
	iterations := flag.Int("n", 1000, "alignment iterations")
	mode := flag.String("mode", "local", "alignment mode: local or semiglobal")
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile).Stop()
	case "":
	default:
		log.Fatalf("unknown profile mode %q", *profileMode)
	}

	regulator, err := sigalign.NewRegulator(4, 6, 2, 30, 0.1)
	if err != nil {
		log.Fatalf("regulator: %v", err)
	}

	alignMode := sigalign.SemiGlobal
	if *mode == "local" {
		alignMode = sigalign.Local
	}
	aligner := sigalign.NewAligner(regulator, alignMode, sigalign.DoublingGrowth)

	rng := rand.New(rand.NewSource(1))
	target := randomSequence(rng, *targetLen)
	query := mutateQuery(rng, target, *queryLen, *mutateEvery)

	storage := newMemoryStorage(target)
	locator := newKmerLocator(storage, int(regulator.PatternSize()))
	reference := sigalign.NewReference(locator, storage)

	var totalAlignments int
	for i := 0; i < *iterations; i++ {
		result, err := aligner.Align(query, reference)
		if err != nil {
			log.Fatalf("align: %v", err)
		}
		for _, t := range result {
			totalAlignments += len(t.Alignments)
		}
	}
	fmt.Fprintf(os.Stderr, "%d iterations, %d total alignments\n", *iterations, totalAlignments)
}

func randomSequence(rng *rand.Rand, n int) []byte {
	const bases = "ACGT"
	out := make([]byte, n)
	for i := range out {
		out[i] = bases[rng.Intn(len(bases))]
	}
	return out
}

func mutateQuery(rng *rand.Rand, target []byte, length, mutateEvery int) []byte {
	start := rng.Intn(len(target) - length)
	out := append([]byte(nil), target[start:start+length]...)
	const bases = "ACGT"
	if mutateEvery <= 0 {
		return out
	}
	for i := 0; i < len(out); i += mutateEvery {
		out[i] = bases[rng.Intn(len(bases))]
	}
	return out
}

// memoryStorage and memoryBuffer are the simplest possible
// SequenceStorage: one target, held entirely in memory.
type memoryStorage struct{ target []byte }

func newMemoryStorage(target []byte) *memoryStorage { return &memoryStorage{target: target} }

func (s *memoryStorage) NumTargets() uint32 { return 1 }
func (s *memoryStorage) GetBuffer() sigalign.Buffer { return &memoryBuffer{} }
func (s *memoryStorage) FillBuffer(targetIndex uint32, buf sigalign.Buffer) {
	buf.(*memoryBuffer).seq = s.target
}

type memoryBuffer struct{ seq []byte }

func (b *memoryBuffer) RequestedSequence() []byte { return b.seq }

// kmerLocator indexes a single target's exact k-mers into a hash map,
// the simplest PatternLocator a benchmark can stand up without a real
// FM-index dependency.
type kmerLocator struct {
	k         int
	positions map[string][]uint32
}

func newKmerLocator(storage *memoryStorage, k int) *kmerLocator {
	idx := &kmerLocator{k: k, positions: make(map[string][]uint32)}
	target := storage.target
	for i := 0; i+k <= len(target); i++ {
		key := string(target[i : i+k])
		idx.positions[key] = append(idx.positions[key], uint32(i))
	}
	return idx
}

func (l *kmerLocator) Locate(pattern []byte, targetIndices []uint32) []sigalign.PatternLocation {
	positions, ok := l.positions[string(pattern)]
	if !ok || len(targetIndices) == 0 {
		return nil
	}
	return []sigalign.PatternLocation{{TargetIndex: 0, SortedPositions: positions}}
}
