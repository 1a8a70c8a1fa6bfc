package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jatsmeta/config"
	"jatsmeta/jats"
	"jatsmeta/state"
)

// batch runs document extraction on a bounded number of goroutines. Every
// document gets its own tree, accessors share nothing but immutable tables.
type batch struct {
	ctx   context.Context
	g     *errgroup.Group
	env   *state.LocalEnv
	dst   string
	specs []jats.FieldSpec
	log   *zap.Logger

	// when set results are written here in submission order instead of files
	out io.Writer

	mu      sync.Mutex
	results [][]byte
	errs    error
	failed  []string

	// sources which failed before they could be submitted
	rejected int
}

// summary is stored in debug report when batch is done.
type summary struct {
	Documents int      `yaml:"documents"`
	Format    string   `yaml:"format"`
	Fields    []string `yaml:"fields"`
	Failed    []string `yaml:"failed,omitempty"`
}

func newBatch(ctx context.Context, dst string, specs []jats.FieldSpec, log *zap.Logger) *batch {
	env := state.EnvFromContext(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, env.Cfg.Extraction.Workers))
	return &batch{ctx: gctx, g: g, env: env, dst: dst, specs: specs, log: log}
}

func memory(data []byte) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
}

// submit schedules extraction of a single document, blocking while all
// workers are busy. "src" is the source path relative to processed input.
func (b *batch) submit(src string, enc srcEncoding, open func() (io.ReadCloser, error)) {
	b.mu.Lock()
	idx := len(b.results)
	b.results = append(b.results, nil)
	b.mu.Unlock()

	b.g.Go(func() error {
		if err := b.ctx.Err(); err != nil {
			return err
		}
		r, err := open()
		if err != nil {
			b.log.Error("Unable to process file", zap.String("file", src), zap.Error(err))
			b.fail(src, err)
			return nil
		}
		defer r.Close()

		if err := b.processDocument(idx, r, enc, src); err != nil {
			b.log.Error("Unable to process file", zap.String("file", src), zap.Error(err))
			b.fail(src, err)
		}
		return nil
	})
}

// fail records source which could not be processed.
func (b *batch) fail(src string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failed = append(b.failed, src)
	b.errs = multierr.Append(b.errs, fmt.Errorf("%s: %w", src, err))
}

// reject records source which failed before extraction could be scheduled.
func (b *batch) reject(src string, err error) {
	b.fail(src, err)
	b.mu.Lock()
	b.rejected++
	b.mu.Unlock()
}

// wait waits for all submitted documents, flushes buffered output and reports
// failures.
func (b *batch) wait() error {
	err := b.g.Wait()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.out != nil {
		for _, data := range b.results {
			if data == nil {
				continue
			}
			if _, er := b.out.Write(data); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to write output: %w", er))
				break
			}
		}
	}

	if b.env.Rpt != nil {
		sum := summary{Documents: len(b.results) + b.rejected, Format: b.env.Format.String(), Failed: b.failed}
		for _, s := range b.specs {
			sum.Fields = append(sum.Fields, s.Name)
		}
		if er := b.env.Rpt.StoreYAML("summary.yaml", sum); er != nil {
			b.log.Warn("Unable to store batch summary", zap.Error(er))
		}
	}

	if len(b.failed) > 0 {
		err = multierr.Append(err, fmt.Errorf("unable to process %d of %d documents: %w", len(b.failed), len(b.results)+b.rejected, b.errs))
	}
	return err
}

// processDocument extracts single article. "src" is part of the source path
// (always including file name) relative to the original path.
func (b *batch) processDocument(idx int, r io.Reader, enc srcEncoding, src string) (rerr error) {
	env, log := b.env, b.log

	var outputName string

	log.Info("Extraction starting", zap.String("from", src))
	defer func(start time.Time) {
		// a broken document must not stop the whole batch
		if r := recover(); r != nil {
			log.Error("Extraction ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("from", src), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("extraction panic: %v", r)
		} else if rerr == nil {
			log.Info("Extraction completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	doc, err := loadDocument(r, enc)
	if err != nil {
		return fmt.Errorf("unable to parse JATS source (%s): %w", src, err)
	}

	rec := extractRecord(doc, src, b.specs, log)

	buf := new(bytes.Buffer)
	if b.out != nil && env.Format == config.OutputFmtYaml {
		// multiple documents in a single stream
		buf.WriteString("---\n")
	}
	if err := encodeRecord(buf, rec, env.Format, env.Cfg.Extraction.Indent, env.Cfg.Extraction.OmitAbsent); err != nil {
		return fmt.Errorf("unable to encode fields: %w", err)
	}

	// Store extraction artifacts for debugging
	if env.Rpt != nil {
		dir := fmt.Sprintf("documents/%04d-%s/", idx, filepath.Base(src))
		if data, err := doc.WriteToBytes(); err == nil {
			env.Rpt.StoreData(dir+filepath.Base(src), data)
		}
		env.Rpt.StoreData(dir+"fields.txt", []byte(jats.Dump(doc)))
		env.Rpt.StoreData(dir+"result"+env.Format.Ext(), buf.Bytes())
	}

	if b.out != nil {
		outputName = "<stdout>"
		b.mu.Lock()
		b.results[idx] = buf.Bytes()
		b.mu.Unlock()
		return nil
	}

	outputName = buildOutputPath(doc, src, b.dst, env, log)
	if err := prepareOutput(outputName, env.Overwrite, log); err != nil {
		return err
	}
	// O_EXCL catches documents from different sources mapped to the same name
	f, err := os.OpenFile(outputName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("unable to write output file: %w", err)
	}
	return f.Close()
}
