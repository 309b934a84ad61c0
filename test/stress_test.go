//go:build stress

package test

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashtable"
	"github.com/gostonefire/hashtable/crt"
	"github.com/gostonefire/hashtable/internal/utils"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

const keyLength = 20

func createTestdata(r *rand.Rand, amount int) [][]byte {
	testdata := make([][]byte, amount)
	for i := range testdata {
		testdata[i] = make([]byte, 30)
		r.Read(testdata[i])
	}

	return testdata
}

func insertTestdata(testdata [][]byte, ht *hashtable.HashTable) error {
	for _, data := range testdata {
		err := ht.Insert(data[:keyLength], data[keyLength:])
		if err != nil {
			return err
		}
	}

	return nil
}

func popTestdata(testdata [][]byte, ht *hashtable.HashTable) error {
	for _, data := range testdata {
		value, err := ht.Pop(data[:keyLength])
		if err != nil {
			return err
		}
		if !utils.IsEqual(value, data[keyLength:]) {
			return fmt.Errorf("popped wrong value")
		}
	}

	return nil
}

func searchTestdata(testdata [][]byte, ht *hashtable.HashTable, shouldNotExist bool) error {
	for _, data := range testdata {
		value, err := ht.Search(data[:keyLength])
		if shouldNotExist {
			if err == nil {
				return fmt.Errorf("search should not find data")
			} else if !errors.Is(err, crt.NoRecordFound{}) {
				return err
			}
		} else {
			if err != nil {
				return err
			}
			if !utils.IsEqual(value, data[keyLength:]) {
				return fmt.Errorf("found wrong value")
			}
		}
	}

	return nil
}

type TestCaseStressTest struct {
	algName   string
	conf      hashtable.Conf
	nTestdata int
}

func TestStress(t *testing.T) {
	t.Run("stress tests for all internal hash algorithms", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{algName: "PolynomialDoubleHash", conf: hashtable.Conf{}, nTestdata: 50000},
			{algName: "XXDoubleHash", conf: hashtable.Conf{UseXXHash: true}, nTestdata: 50000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("handles lots of growing and shrinking for %s", test.algName), func(t *testing.T) {
				// Prepare test data
				r := rand.New(rand.NewSource(123))
				testdata1 := createTestdata(r, test.nTestdata)
				testdata2 := createTestdata(r, test.nTestdata)
				testdata3 := createTestdata(r, test.nTestdata)

				// Prepare hash table
				ht, err := hashtable.NewHashTableWithConf(test.conf)
				assert.NoError(t, err, "create hash table")

				// Insert first two sets of test data
				err = insertTestdata(testdata1, ht)
				assert.NoError(t, err, "insert test set 1")
				err = insertTestdata(testdata2, ht)
				assert.NoError(t, err, "insert test set 2")
				grownSize := ht.Size()

				// Remove first set from hash table
				err = popTestdata(testdata1, ht)
				assert.NoError(t, err, "pop test set 1")

				// Insert third set of test data
				err = insertTestdata(testdata3, ht)
				assert.NoError(t, err, "insert test set 3")

				// Check all three test sets
				err = searchTestdata(testdata1, ht, true)
				assert.NoError(t, err, "search test set 1, should not exist")
				err = searchTestdata(testdata2, ht, false)
				assert.NoError(t, err, "search test set 2")
				err = searchTestdata(testdata3, ht, false)
				assert.NoError(t, err, "search test set 3")

				// Remove second and third set from hash table
				err = popTestdata(testdata2, ht)
				assert.NoError(t, err, "pop test set 2")
				err = popTestdata(testdata3[:test.nTestdata-10], ht)
				assert.NoError(t, err, "pop most of test set 3")

				// Check remaining
				err = searchTestdata(testdata2, ht, true)
				assert.NoError(t, err, "search test set 2, should not exist")
				err = searchTestdata(testdata3[test.nTestdata-10:], ht, false)
				assert.NoError(t, err, "search rest of test set 3")

				// Get stats
				stat := ht.Stat()
				assert.Equal(t, int64(10), stat.Records, "correct number of records")
				assert.Less(t, stat.Size, grownSize, "table has shrunk")
				assert.GreaterOrEqual(t, stat.BaseSize, int64(53), "base size not below initial")

				ht.Destroy()
				assert.Zero(t, ht.Size(), "backing storage released")
			})
		}
	})
}
