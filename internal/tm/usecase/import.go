package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"localization-srv/internal/model"
	"localization-srv/internal/tm"
	"localization-srv/pkg/util"
)

// Header aliases accepted in import workbooks, keyed by normalized header text.
var importColumns = map[string]string{
	"source":                   colSource,
	"source text":              colSource,
	"source_text":              colSource,
	"target":                   colTarget,
	"target text":              colTarget,
	"target_text":              colTarget,
	"translation":              colTarget,
	"source language":          colSourceLanguage,
	"source_language":          colSourceLanguage,
	"target language":          colTargetLanguage,
	"target_language":          colTargetLanguage,
	"brand":                    colBrand,
	"brand id":                 colBrand,
	"brand_id":                 colBrand,
	"asset type":               colAssetType,
	"asset_type":               colAssetType,
	"therapeutic area":         colTherapeuticArea,
	"therapeutic_area":         colTherapeuticArea,
	"regulatory status":        colRegulatoryStatus,
	"regulatory_status":        colRegulatoryStatus,
	"status":                   colRegulatoryStatus,
	"brand consistency":        colBrandScore,
	"brand_consistency_score":  colBrandScore,
	"cultural appropriateness": colCultural,
	"cultural_appropriateness": colCultural,
}

const (
	colSource           = "source_text"
	colTarget           = "target_text"
	colSourceLanguage   = "source_language"
	colTargetLanguage   = "target_language"
	colBrand            = "brand_id"
	colAssetType        = "asset_type"
	colTherapeuticArea  = "therapeutic_area"
	colRegulatoryStatus = "regulatory_status"
	colBrandScore       = "brand_consistency_score"
	colCultural         = "cultural_appropriateness"
)

func (uc *implUseCase) Import(ctx context.Context, sc model.Scope, input tm.ImportInput) (tm.ImportOutput, error) {
	f, err := excelize.OpenReader(input.Reader)
	if err != nil {
		uc.l.Warnf(ctx, "tm.usecase.Import: open workbook failed: %v", err)
		return tm.ImportOutput{}, fmt.Errorf("%w: %v", tm.ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		uc.l.Warnf(ctx, "tm.usecase.Import: read sheet %q failed: %v", sheet, err)
		return tm.ImportOutput{}, fmt.Errorf("%w: %v", tm.ErrInvalidWorkbook, err)
	}
	if len(rows) == 0 {
		return tm.ImportOutput{}, tm.ErrNoUnits
	}

	header := mapHeader(rows[0])
	if _, ok := header[colSource]; !ok {
		return tm.ImportOutput{}, fmt.Errorf("%w: %s", tm.ErrMissingColumn, colSource)
	}
	if _, ok := header[colTarget]; !ok {
		return tm.ImportOutput{}, fmt.Errorf("%w: %s", tm.ErrMissingColumn, colTarget)
	}

	now := time.Now().UTC()
	var units []model.TMUnit
	skipped := 0
	for i, row := range rows[1:] {
		unit, err := normalizeUnit(rowToUnit(row, header, input), now)
		if err != nil {
			uc.l.Warnf(ctx, "tm.usecase.Import: skip row %d: %v", i+2, err)
			skipped++
			continue
		}
		units = append(units, unit)
	}
	if len(units) == 0 {
		return tm.ImportOutput{Skipped: skipped}, tm.ErrNoUnits
	}

	out, err := uc.Upsert(ctx, sc, tm.UpsertInput{Units: units})
	if err != nil {
		return tm.ImportOutput{Skipped: skipped}, err
	}

	return tm.ImportOutput{
		Imported: len(out.IDs),
		Skipped:  skipped,
		IDs:      out.IDs,
	}, nil
}

func mapHeader(row []string) map[string]int {
	header := make(map[string]int, len(row))
	for i, cell := range row {
		if col, ok := importColumns[util.NormalizeKey(cell)]; ok {
			if _, dup := header[col]; !dup {
				header[col] = i
			}
		}
	}
	return header
}

func rowToUnit(row []string, header map[string]int, input tm.ImportInput) model.TMUnit {
	cell := func(col string) string {
		i, ok := header[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	orDefault := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}

	u := model.TMUnit{
		SourceText:       cell(colSource),
		TargetText:       cell(colTarget),
		SourceLanguage:   orDefault(cell(colSourceLanguage), input.DefaultSourceLanguage),
		TargetLanguage:   orDefault(cell(colTargetLanguage), input.DefaultTargetLanguage),
		BrandID:          orDefault(cell(colBrand), input.DefaultBrandID),
		AssetType:        cell(colAssetType),
		TherapeuticArea:  cell(colTherapeuticArea),
		RegulatoryStatus: model.RegulatoryStatus(strings.ToLower(cell(colRegulatoryStatus))),
	}
	if v, err := strconv.Atoi(cell(colBrandScore)); err == nil {
		u.BrandConsistencyScore = v
	}
	if v, err := strconv.Atoi(cell(colCultural)); err == nil {
		u.CulturalAppropriateness = &v
	}
	return u
}
