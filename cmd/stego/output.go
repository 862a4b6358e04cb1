package main

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/yyyoichi/stego_lsb/advisor"
	"github.com/yyyoichi/stego_lsb/quality"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	labelColor   = color.New(color.FgCyan)
)

func printField(w io.Writer, label, value string) {
	labelColor.Fprintf(w, "%-12s", label+":")
	fmt.Fprintf(w, " %s\n", value)
}

func printList(w io.Writer, title string, items []string, c *color.Color) {
	if len(items) == 0 {
		return
	}
	c.Fprintln(w, title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func printReport(w io.Writer, r quality.Report) {
	psnr := "inf"
	if !math.IsInf(r.PSNR, 1) {
		psnr = fmt.Sprintf("%.2f dB", r.PSNR)
	}
	printField(w, "MSE", fmt.Sprintf("%.6f", r.MSE))
	printField(w, "PSNR", psnr)
	printField(w, "SSIM", fmt.Sprintf("%.6f", r.SSIM))
	printField(w, "Changed", fmt.Sprintf("%d samples (max delta %d)", r.ChangedSamples, r.MaxDelta))
	if r.AlphaChanged {
		warnColor.Fprintln(w, "Alpha channel changed.")
	}
}

func printAnalysis(w io.Writer, a advisor.Analysis) {
	printField(w, "Score", fmt.Sprintf("%d/95", a.Score))
	printList(w, "Recommendations:", a.Recommendations, labelColor)
	printList(w, "Vulnerabilities:", a.Vulnerabilities, warnColor)
	printField(w, "Suggested", a.Suggested)
	printField(w, "Ratio", fmt.Sprintf("%.2f", a.CompressionRatio))
}

func printImageAdvice(w io.Writer, a advisor.ImageAdvice) {
	usage := "n/a"
	if !math.IsInf(a.Usage, 1) {
		usage = fmt.Sprintf("%.1f%%", a.Usage)
	}
	printField(w, "Usage", usage)
	printField(w, "Suitability", fmt.Sprintf("%d/100", a.Suitability))
	printList(w, "Image recommendations:", a.Recommendations, labelColor)
}
