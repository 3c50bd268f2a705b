package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"investor-commitments/internal/service"
	"investor-commitments/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler downloads the investor summary table as CSV or XLSX.
type ExportHandler struct {
	Service *service.InvestorService
}

func NewExportHandler(svc *service.InvestorService) *ExportHandler {
	return &ExportHandler{Service: svc}
}

var exportHeaders = []string{
	"ID", "Name", "Type", "Country", "Date Added", "Last Updated", "Total Commitments",
}

func summaryRow(inv service.InvestorSummary) []string {
	return []string{
		fmt.Sprintf("%d", inv.ID),
		inv.Name,
		inv.Type,
		inv.Country,
		inv.DateAdded.Format("2006-01-02"),
		inv.LastUpdated.Format("2006-01-02"),
		inv.TotalCommitments.StringFixed(2),
	}
}

// ExportCSV writes the investor summaries as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	investors, err := h.Service.ListInvestors()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list investors")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"investors_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, inv := range investors {
		writer.Write(summaryRow(inv))
	}
}

// ExportXLSX writes the investor summaries as an XLSX attachment.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	investors, err := h.Service.ListInvestors()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list investors")
		return
	}

	f := excelize.NewFile()
	sheetName := "Investors"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create sheet")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, h := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, h)
	}
	for idx, inv := range investors {
		row := idx + 2
		for i, v := range summaryRow(inv) {
			f.SetCellValue(sheetName, fmt.Sprintf("%c%d", 'A'+i, row), v)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "D", 15)
	f.SetColWidth(sheetName, "E", "F", 14)
	f.SetColWidth(sheetName, "G", "G", 18)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"investors_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to write workbook")
	}
}
