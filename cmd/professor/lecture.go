package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/professor/internal/container"
	"github.com/saulo-duarte/professor/internal/lecture"
)

func newLectureCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "lecture <topic>",
		Short: "Stream a lecture transcript for a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			faculty, err := container.NewFaculty(cmd.Context(), settings)
			if err != nil {
				return err
			}

			stream, err := faculty.Prepare(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !quiet {
				stream = echo(out, stream)
			}

			material, err := lecture.Accumulate(cmd.Context(), stream)
			if err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintln(out)
			}
			printMaterial(out, material)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not echo raw chunks while streaming")
	return cmd
}

func echo(w io.Writer, stream lecture.Stream) lecture.Stream {
	return func(yield func(string, error) bool) {
		for chunk, err := range stream {
			if err == nil {
				fmt.Fprint(w, chunk)
			}
			if !yield(chunk, err) {
				return
			}
		}
	}
}

func printMaterial(w io.Writer, m *lecture.Material) {
	fmt.Fprintf(w, "Transcript:\n%s\n\nVisual aid query: %s\n", m.Transcript, m.VisualAidQuery)
}
