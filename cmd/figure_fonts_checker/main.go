// figure_fonts_checker reports which font types get embedded when the given
// figure images are placed into a typeset PDF.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hausen6/figure-fonts-checker/internal/config"
	"github.com/hausen6/figure-fonts-checker/internal/env"
	"github.com/hausen6/figure-fonts-checker/internal/util"
	"github.com/hausen6/figure-fonts-checker/pkg/figfonts"
)

var (
	typePattern = flag.String("type", "", "regular expression filtering the reported font types, matched from the start")
	ignoreCase  = flag.Bool("i", false, "case-insensitive filter matching")
	logLevel    = flag.String("l", "INFO", "log level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")
)

// this function run before main
func init() {
	flag.BoolVar(ignoreCase, "ignorecase", false, "case-insensitive filter matching")
	flag.StringVar(logLevel, "log_level", "INFO", "log level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")
	env.LoadEnv(".env")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: figure_fonts_checker [options] <image-file|glob> ...\n")
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV, *logLevel)
	defer logger.Sync()
	logger.Debugf("Configuration: %+v", cfg)

	imageFiles, err := figfonts.ExpandPatterns(flag.Args())
	if err != nil {
		logger.Fatal(err)
	}

	var filter *figfonts.TypeFilter
	if *typePattern != "" {
		filter, err = figfonts.NewTypeFilter(*typePattern, *ignoreCase)
		if err != nil {
			logger.Fatal(err)
		}
	}

	checker := figfonts.NewChecker(figfonts.Config{
		LatexCmd:    cfg.Tools.LatexCmd,
		DvipdfCmd:   cfg.Tools.DvipdfCmd,
		PdffontsCmd: cfg.Tools.PdffontsCmd,
	}, logger)

	fontTypes, err := checker.CheckFontTypes(imageFiles)
	if err != nil {
		logger.Fatal(err)
	}

	// All images share one compiled PDF, so a font cannot be attributed to a
	// single image; every line carries the last filename of the expanded
	// list.
	label := ""
	if len(imageFiles) > 0 {
		label = imageFiles[len(imageFiles)-1]
	}
	for _, fontType := range fontTypes {
		if filter != nil && !filter.Match(fontType) {
			continue
		}
		fmt.Printf("%s: %s\n", label, fontType)
	}
}
