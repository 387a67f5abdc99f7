package sqlstore

import (
	"context"
	"fmt"
	"popdiff/api/models"
	"popdiff/api/utils"
	"sort"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

const alleleCountsByGeneQuery = `
	SELECT allele_frequency.REF AS REF, allele_frequency.ALT AS ALT
	FROM allele_frequency
	JOIN snp ON snp.position = allele_frequency.position
	WHERE snp.gene_name = ? AND allele_frequency.population_code = ?`

const frequencyRowsByGeneQuery = `
	SELECT
		COALESCE(snp.snp_id, CAST(snp.position AS TEXT)) AS snp,
		allele_frequency.population_code AS population,
		allele_frequency.REF AS REF,
		allele_frequency.ALT AS ALT
	FROM allele_frequency
	JOIN snp ON snp.position = allele_frequency.position
	WHERE snp.gene_name = ? AND allele_frequency.population_code IN (?)
	ORDER BY snp.position`

// Store reads allele data from the relational store. Each call opens its
// own connection and closes it before returning.
type Store struct {
	cfg *models.Config
}

func NewStore(cfg *models.Config) *Store {
	return &Store{cfg: cfg}
}

func (s *Store) open() (*sqlx.DB, error) {
	return utils.CreateDbConnection(s.cfg)
}

// GetAlleleCountsByGene returns the (REF, ALT) rows of gene for every
// population. Populations without rows map to an empty slice.
func (s *Store) GetAlleleCountsByGene(ctx context.Context, gene string, populations []string) (map[string][]models.AlleleCount, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	alleleFreqs := make(map[string][]models.AlleleCount, len(populations))
	for _, populationCode := range populations {
		rows := make([]models.AlleleCount, 0)
		if err := db.SelectContext(ctx, &rows, alleleCountsByGeneQuery, gene, populationCode); err != nil {
			return nil, fmt.Errorf("querying allele counts for %s/%s: %w", gene, populationCode, err)
		}
		alleleFreqs[populationCode] = rows
	}

	return alleleFreqs, nil
}

type frequencyRow struct {
	Snp        string `db:"snp"`
	Population string `db:"population"`
	models.AlleleCount
}

// GetFrequencySamplesByGene assembles heterozygosity-method input from the
// store: one sample per SNP/population with REF/ALT normalized to
// frequencies. Rows without alleles are skipped. Within a SNP, samples
// follow the requested population order.
func (s *Store) GetFrequencySamplesByGene(ctx context.Context, gene string, populations []string) ([]models.FrequencySample, error) {
	if len(populations) == 0 {
		return []models.FrequencySample{}, nil
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query, args, err := sqlx.In(frequencyRowsByGeneQuery, gene, populations)
	if err != nil {
		return nil, err
	}
	query = db.Rebind(query)

	var rows []frequencyRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("querying allele frequencies for %s: %w", gene, err)
	}

	popRank := make(map[string]int, len(populations))
	for i, p := range populations {
		popRank[p] = i
	}
	snpRank := map[string]int{}
	for _, r := range rows {
		if _, ok := snpRank[r.Snp]; !ok {
			snpRank[r.Snp] = len(snpRank)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Snp != rows[j].Snp {
			return snpRank[rows[i].Snp] < snpRank[rows[j].Snp]
		}
		return popRank[rows[i].Population] < popRank[rows[j].Population]
	})

	samples := make([]models.FrequencySample, 0, len(rows))
	for _, r := range rows {
		rf, af, ok := models.FrequencyFromCounts(r.AlleleCount)
		if !ok {
			continue
		}
		samples = append(samples, models.FrequencySample{
			Snp:        r.Snp,
			Population: r.Population,
			Rf:         rf,
			Af:         af,
		})
	}

	return samples, nil
}

// GetOverview reports the genes and populations present in the store and
// the number of mapped SNPs. The three queries run concurrently.
func (s *Store) GetOverview(ctx context.Context) (map[string]interface{}, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var (
		genes       []string
		populations []string
		snpCount    int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.SelectContext(gctx, &genes, `SELECT DISTINCT gene_name FROM snp WHERE gene_name IS NOT NULL ORDER BY gene_name`)
	})
	g.Go(func() error {
		return db.SelectContext(gctx, &populations, `SELECT DISTINCT population_code FROM allele_frequency ORDER BY population_code`)
	})
	g.Go(func() error {
		return db.GetContext(gctx, &snpCount, `SELECT COUNT(*) FROM snp`)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("building overview: %w", err)
	}

	if genes == nil {
		genes = []string{}
	}
	if populations == nil {
		populations = []string{}
	}

	return map[string]interface{}{
		"genes":       genes,
		"populations": populations,
		"snpCount":    snpCount,
	}, nil
}

// Seed migrates the schema and inserts the given rows in one transaction.
func (s *Store) Seed(ctx context.Context, snps []models.SnpRecord, alleles []models.AlleleFrequencyRecord) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, snp := range snps {
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO snp (snp_id, chromosome, position, gene_name) VALUES (:snp_id, :chromosome, :position, :gene_name)`, snp); err != nil {
			return fmt.Errorf("inserting snp %s: %w", snp.SnpId, err)
		}
	}
	for _, af := range alleles {
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO allele_frequency (position, population_code, REF, ALT) VALUES (:position, :population_code, :REF, :ALT)`, af); err != nil {
			return fmt.Errorf("inserting allele frequency at %d/%s: %w", af.Position, af.PopulationCode, err)
		}
	}

	return tx.Commit()
}
