package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"social-sync/domain"
	"social-sync/notify"
	"social-sync/projection"
)

const previewWidth = 40

// renderDashboard prints the current conversation list and notification
// state. Purely a read of published snapshots; it never mutates state.
func renderDashboard(w io.Writer, state *projection.ChatState, center *notify.Center) {
	header := fmt.Sprintf(" Conversations (unread notifications: %d) ", center.Unread())
	fmt.Fprintln(w, color.New(color.BgBlack, color.FgGreen).Render(header))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Conversation", "Last Message", "Unread", "Updated"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, conv := range state.Conversations() {
		name := conv.Name
		if name == "" {
			name = conv.ID
		}
		if conv.ID == state.ActiveID() {
			name = "* " + name
		}
		table.Append([]string{
			name,
			preview(conv.LastMessage),
			strconv.Itoa(conv.UnreadCount),
			updatedAt(conv),
		})
	}
	table.Render()

	if toast, ok := center.Toast(); ok {
		line := fmt.Sprintf(" %s: %s ", toast.SenderName, toast.Message)
		fmt.Fprintln(w, color.New(color.BgBlack, color.FgYellow).Render(line))
	}
}

func preview(msg *domain.Message) string {
	if msg == nil {
		return ""
	}
	text := msg.Content
	if msg.Unsent {
		text = domain.Tombstone
	}
	runes := []rune(text)
	if len(runes) > previewWidth {
		return string(runes[:previewWidth]) + "…"
	}
	return text
}

func updatedAt(conv domain.Conversation) string {
	if conv.UpdatedAt.IsZero() {
		return ""
	}
	return conv.UpdatedAt.Format("15:04:05")
}
