// Package extract implements "extract" subcommand: it finds JATS articles in
// files, directories and zip archives, runs requested field accessors against
// each of them and writes results as JSON or YAML.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"jatsmeta/archive"
	"jatsmeta/config"
	"jatsmeta/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("extract")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	env.Stdout, env.Overwrite = cmd.Bool("stdout"), cmd.Bool("overwrite")
	if env.Stdout {
		// stdout belongs to results now
		env.Console.Redirect(os.Stderr)
	}

	dst := cmd.Args().Get(1)
	switch {
	case env.Stdout && len(dst) > 0:
		log.Warn("Writing to standard output, destination ignored", zap.String("destination", dst))
	case len(dst) == 0:
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Format = env.Cfg.Extraction.Format
	if cmd.IsSet("to") {
		if env.Format, err = config.ParseOutputFmt(cmd.String("to")); err != nil {
			log.Warn("Unknown output format requested, switching to json", zap.Error(err))
			env.Format = config.OutputFmtJson
		}
	}

	env.Fields = env.Cfg.Extraction.Fields
	if cmd.IsSet("fields") {
		env.Fields = nil
		for _, f := range cmd.StringSlice("fields") {
			// allow both repeated flags and comma separated lists
			for name := range strings.SplitSeq(f, ",") {
				if name = strings.TrimSpace(name); name != "" {
					env.Fields = append(env.Fields, name)
				}
			}
		}
	}
	specs, err := selectFields(env.Fields)
	if err != nil {
		return fmt.Errorf("unable to select fields: %w", err)
	}

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	cp := cmd.String("force-zip-cp")
	if len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set name. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	log.Info("Processing starting",
		zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format), zap.Int("fields", len(specs)))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	b := newBatch(ctx, dst, specs, log)
	if env.Stdout {
		b.out = os.Stdout
	}
	return process(ctx, src, b)
}

// process handles the core extraction logic independently of CLI framework.
// It determines the input type (directory, archive, or single file) and
// processes accordingly.
func process(ctx context.Context, src string, b *batch) error {
	if err := walkSource(ctx, src, b); err != nil {
		// let already submitted documents finish
		return multierr.Append(err, b.wait())
	}
	return b.wait()
}

func walkSource(ctx context.Context, src string, b *batch) error {
	log := b.log

	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			return processDir(ctx, head, b)
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		arc, err := isArchiveFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if arc {
			// we need to look inside to see if path makes sense
			tail = filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if err := processArchive(ctx, head, tail, "", b); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			return nil
		}

		article, enc, err := isArticleFile(head)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if article && len(tail) == 0 {
			// we have article, it cannot have tail
			b.submit(filepath.Base(head), enc, openFile(head))
			return nil
		}
		log.Debug("Not an article", zap.String("file", head))
		return fmt.Errorf("input was not recognized as JATS article (%s)", head)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

func openFile(path string) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

// processDir walks directory tree finding articles and archives and processes
// them in natural order of their paths.
func processDir(ctx context.Context, dir string, b *batch) error {
	log := b.log

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Sort(natural.StringSlice(paths))

	count := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		arc, err := isArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if arc {
			count++
			if err := processArchive(ctx, path, "", filepath.Dir(rel), b); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
				b.reject(rel, err)
			}
			continue
		}

		article, enc, err := isArticleFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if !article {
			log.Debug("Skipping file, not recognized as article or archive", zap.String("file", path))
			continue
		}
		count++
		b.submit(rel, enc, openFile(path))
	}
	if count == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return nil
}

// processArchive walks all files inside archive, finds articles under
// "pathIn" and processes them. Entries are read while archive is open, actual
// extraction happens later.
func processArchive(ctx context.Context, path, pathIn, pathOut string, b *batch) error {
	log := b.log
	cp := state.EnvFromContext(ctx).CodePage

	count := 0
	err := archive.Walk(path, pathIn, cp, func(arc string, e archive.Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		article, enc, err := isArticleInArchive(e.File)
		if err != nil {
			log.Warn("Skipping file in archive", zap.String("archive", arc), zap.String("path", e.Name), zap.Error(err))
			return nil
		}
		if !article {
			log.Debug("Skipping file, not recognized as article", zap.String("archive", arc), zap.String("file", e.Name))
			return nil
		}
		count++

		data, err := readEntry(e)
		if err != nil {
			log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", e.Name), zap.Error(err))
			b.reject(e.Name, err)
			return nil
		}
		b.submit(filepath.Join(pathOut, filepath.FromSlash(e.Name)), enc, memory(data))
		return nil
	})
	if err == nil && count == 0 {
		log.Debug("Nothing to process", zap.String("archive", path))
	}
	return err
}

func readEntry(e archive.Entry) ([]byte, error) {
	r, err := e.File.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
