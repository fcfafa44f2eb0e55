package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
	monthLayout = "2006-01"
)

// timeToMinutes mengubah "HH:MM" atau "HH:MM:SS" jadi menit sejak tengah
// malam. Detik diabaikan, string kosong/rusak dihitung 0.
func timeToMinutes(timeStr string) int {
	if timeStr == "" {
		return 0
	}
	parts := strings.Split(timeStr, ":")
	if len(parts) < 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// daysBetween menghitung jumlah hari inklusif kedua ujung:
// floor((end - start) / 1 hari) + 1.
func daysBetween(startDate, endDate string) (int, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, &ValidationError{Msg: "Format tanggal harus YYYY-MM-DD"}
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, &ValidationError{Msg: "Format tanggal harus YYYY-MM-DD"}
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// monthRange mengubah "YYYY-MM" jadi tanggal awal dan akhir bulan itu.
func monthRange(month string) (startDate, endDate string, totalDays int, err error) {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return "", "", 0, &ValidationError{Msg: "Format month harus YYYY-MM"}
	}
	startDate = month + "-01"
	lastDay := t.AddDate(0, 1, -1)
	return startDate, lastDay.Format(dateLayout), lastDay.Day(), nil
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// yearRange mengubah "YYYY" jadi range satu tahun penuh.
func yearRange(year string) (startDate, endDate string, totalDays int, err error) {
	y, convErr := strconv.Atoi(year)
	if convErr != nil || len(year) != 4 {
		return "", "", 0, &ValidationError{Msg: "Format year harus YYYY"}
	}
	totalDays = 365
	if isLeapYear(y) {
		totalDays = 366
	}
	return fmt.Sprintf("%s-01-01", year), fmt.Sprintf("%s-12-31", year), totalDays, nil
}
