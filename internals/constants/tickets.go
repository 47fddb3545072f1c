package constants

import "strings"

/* ===================== Ticket enums ===================== */
// TODO move these into the categories/states reference tables so staff can
// maintain them without a deploy (carried over from the legacy system).

var TicketPriorities = []string{"Critical", "High", "Normal", "Low"}

var TicketStatuses = []string{"Open", "On Hold", "Resolved", "Closed"}

var TicketTypes = []string{
	"4G Modem", "Adsl", "Antivirus", "Barcode Printer", "Bug", "Cabling",
	"Cellphone", "Desktop", "Enhancement", "Excel", "Extension", "Fiber",
	"Handset", "Keyboard", "Laptop", "LTE", "Mouse", "Outlook", "Printer",
	"Project", "Quote", "RDP", "Router", "Scanner", "Server", "Support",
	"Switch", "Terminal", "VPN", "Wifi AP", "Windows Updates", "Word",
}

func IsValidTicketPriority(v string) bool { return contains(TicketPriorities, v) }
func IsValidTicketStatus(v string) bool   { return contains(TicketStatuses, v) }
func IsValidTicketType(v string) bool     { return contains(TicketTypes, v) }

func contains(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
