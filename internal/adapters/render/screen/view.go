// Package screen renders the CLI screens with lipgloss through a one-shot
// bubbletea program.
package screen

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/charmbracelet/lipgloss"
)

type Options struct {
	Table *i18n.Table
	Theme domain.Theme
}

type ProfileData struct {
	User          domain.User
	Consultations int
}

type SettingsData struct {
	Theme              domain.Theme
	Locale             domain.Locale
	EmailNotifications bool
}

type HistoryEntry struct {
	Consultation domain.Consultation
	// Destination is the zero value when the destination left the catalog.
	Destination domain.Destination
}

func Catalog(opts Options, destinations []domain.Destination) (string, error) {
	t := opts.Table
	return run(opts, func(s styles) string {
		lines := []string{
			s.title.Render(t.Text(i18n.CollectionTitle)),
			s.subtitle.Render(t.Text(i18n.CollectionSubtitle)),
		}

		if len(destinations) == 0 {
			lines = append(lines, s.section.Render(s.empty.Render(t.Text(i18n.NoDestinations))))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, destination := range destinations {
			card := lipgloss.JoinVertical(lipgloss.Left,
				lipgloss.JoinHorizontal(lipgloss.Top, s.id.Render(destination.ID), " ", s.name.Render(destination.Name)),
				s.detail.Render(destination.Description),
				field(s, t.Text(i18n.OperatingHours), destination.Hours),
				field(s, t.Text(i18n.TicketPrice), s.price.Render(formatPrice(t, destination))),
			)
			lines = append(lines, s.section.Render(s.card.Render(card)))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func Destination(opts Options, destination domain.Destination) (string, error) {
	t := opts.Table
	return run(opts, func(s styles) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.subtitle.Render(t.Text(i18n.ExpertSystem)),
			lipgloss.JoinHorizontal(lipgloss.Top, s.id.Render(destination.ID), " ", s.title.Render(destination.Name)),
			s.detail.Render(destination.Description),
			s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
				field(s, t.Text(i18n.Location), destination.Location),
				field(s, t.Text(i18n.OperatingHours), destination.Hours),
				field(s, t.Text(i18n.TicketPrice), s.price.Render(formatPrice(t, destination))),
			)),
			s.section.Render(s.label.Render(t.Text(i18n.HistoricalValue))),
			s.detail.Render(destination.HistoricalValue),
			s.section.Render(s.value.Render(t.Text(i18n.ConsultationPrompt))),
			s.label.Render(fmt.Sprintf("%s: gamelan consult %s", t.Text(i18n.StartConsultation), destination.ID)),
		)
	})
}

func Profile(opts Options, data ProfileData) (string, error) {
	t := opts.Table
	return run(opts, func(s styles) string {
		card := lipgloss.JoinVertical(lipgloss.Left,
			s.name.Render(data.User.Name),
			s.subtitle.Render(data.User.Email),
			s.section.Render(field(s, t.Text(i18n.MemberSince), FormatDate(t.Locale(), data.User.CreatedAt))),
			field(s, t.Text(i18n.TotalConsultations), strconv.Itoa(data.Consultations)),
		)

		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render(t.Text(i18n.ProfileTitle)),
			s.section.Render(s.card.Render(card)),
		)
	})
}

func Settings(opts Options, data SettingsData) (string, error) {
	t := opts.Table
	return run(opts, func(s styles) string {
		themeName := t.Text(i18n.ThemeLight)
		if data.Theme == domain.ThemeDark {
			themeName = t.Text(i18n.ThemeDark)
		}

		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render(t.Text(i18n.SettingsTitle)),
			settingSection(s, t.Text(i18n.SettingsAppearance),
				field(s, t.Text(i18n.DarkMode), toggle(s, t, data.Theme == domain.ThemeDark)+" "+s.label.Render("("+themeName+")")),
				s.empty.Render(t.Text(i18n.DarkModeDesc)),
			),
			settingSection(s, t.Text(i18n.SettingsLanguage),
				field(s, t.Text(i18n.SettingsLanguage), data.Locale.SelfName()),
				s.empty.Render(t.Text(i18n.LanguageDesc)),
			),
			settingSection(s, t.Text(i18n.SettingsNotifications),
				field(s, t.Text(i18n.EmailNotifications), toggle(s, t, data.EmailNotifications)),
				s.empty.Render(t.Text(i18n.EmailNotificationsDesc)),
			),
			settingSection(s, t.Text(i18n.SettingsAccount),
				s.warning.Render(t.Text(i18n.DeleteAccount)),
				s.empty.Render(t.Text(i18n.DeleteAccountDesc)),
			),
		)
	})
}

func History(opts Options, entries []HistoryEntry) (string, error) {
	t := opts.Table
	return run(opts, func(s styles) string {
		lines := []string{s.title.Render(t.Text(i18n.HistoryTitle))}
		if len(entries) == 0 {
			lines = append(lines, s.section.Render(s.empty.Render(t.Text(i18n.HistoryEmpty))))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		rows := make([]string, 0, len(entries))
		for _, entry := range entries {
			name := entry.Destination.Name
			if name == "" {
				name = entry.Consultation.DestinationID
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
				s.label.Render(FormatDate(t.Locale(), entry.Consultation.CreatedAt)),
				"  ",
				s.id.Render(entry.Consultation.DestinationID),
				" ",
				s.value.Render(name),
			))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func settingSection(s styles, heading string, rows ...string) string {
	return s.section.Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{s.name.Render(heading)}, rows...)...))
}

func field(s styles, label, value string) string {
	return s.label.Render(label+": ") + s.value.Render(value)
}

func toggle(s styles, t *i18n.Table, on bool) string {
	if on {
		return s.on.Render(t.Text(i18n.SettingOn))
	}
	return s.off.Render(t.Text(i18n.SettingOff))
}

func formatPrice(t *i18n.Table, destination domain.Destination) string {
	if destination.Free() {
		return t.Text(i18n.FreeEntry)
	}
	return t.FormatRupiah(*destination.Price)
}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDate renders a long-form calendar date the way each locale writes it.
func FormatDate(locale domain.Locale, at time.Time) string {
	if at.IsZero() {
		return "-"
	}
	at = at.Local()

	if locale == domain.LocaleEnglish {
		return at.Format("January 2, 2006")
	}
	return fmt.Sprintf("%d %s %d", at.Day(), indonesianMonths[at.Month()-1], at.Year())
}
